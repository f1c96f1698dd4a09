package remap

// DefaultMappingINI is the built-in default mapping (the Terralith ->
// vanilla translation table), so a user who supplies no --mapping-ini
// still gets a sensible translation. --export-default-mapping-ini
// writes exactly this text.
const DefaultMappingINI = `[mapping]
terralith:alpha_islands = minecraft:mushroom_fields
terralith:alpha_islands_winter = minecraft:snowy_taiga
terralith:alpine_grove = minecraft:snowy_taiga
terralith:alpine_highlands = minecraft:stony_peaks
terralith:amethyst_canyon = minecraft:stony_peaks
terralith:amethyst_rainforest = minecraft:dark_forest
terralith:ancient_sands = minecraft:desert
terralith:arid_highlands = minecraft:desert
terralith:ashen_savanna = minecraft:savanna
terralith:basalt_cliffs = minecraft:windswept_gravelly_hills
terralith:birch_taiga = minecraft:birch_forest
terralith:blooming_plateau = minecraft:plains
terralith:blooming_valley = minecraft:plains
terralith:brushland = minecraft:plains
terralith:bryce_canyon = minecraft:badlands
terralith:caldera = minecraft:stony_peaks
terralith:cloud_forest = minecraft:jungle
terralith:cold_shrubland = minecraft:snowy_taiga
terralith:desert_canyon = minecraft:desert
terralith:desert_oasis = minecraft:desert
terralith:desert_spires = minecraft:desert
terralith:emerald_peaks = minecraft:stony_peaks
terralith:forested_highlands = minecraft:forest
terralith:fractured_savanna = minecraft:savanna
terralith:frozen_cliffs = minecraft:snowy_taiga
terralith:glacial_chasm = minecraft:snowy_taiga
terralith:granite_cliffs = minecraft:windswept_gravelly_hills
terralith:gravel_beach = minecraft:beach
terralith:gravel_desert = minecraft:desert
terralith:haze_mountain = minecraft:stony_peaks
terralith:highlands = minecraft:windswept_hills
terralith:hot_shrubland = minecraft:savanna
terralith:ice_marsh = minecraft:swamp
terralith:jungle_mountains = minecraft:jungle
terralith:lavender_forest = minecraft:flower_forest
terralith:lavender_valley = minecraft:plains
terralith:lush_desert = minecraft:desert
terralith:lush_valley = minecraft:plains
terralith:mirage_isles = minecraft:plains
terralith:moonlight_grove = minecraft:plains
terralith:moonlight_valley = minecraft:plains
terralith:mountain_steppe = minecraft:windswept_hills
terralith:orchid_swamp = minecraft:swamp
terralith:painted_mountains = minecraft:stony_peaks
terralith:red_oasis = minecraft:desert
terralith:rocky_jungle = minecraft:jungle
terralith:rocky_mountains = minecraft:stony_peaks
terralith:rocky_shrubland = minecraft:plains
terralith:sakura_grove = minecraft:flower_forest
terralith:sakura_valley = minecraft:plains
terralith:sandstone_valley = minecraft:desert
terralith:savanna_badlands = minecraft:savanna
terralith:savanna_slopes = minecraft:savanna
terralith:scarlet_mountains = minecraft:stony_peaks
terralith:shield_clearing = minecraft:plains
terralith:shield = minecraft:plains
terralith:shrubland = minecraft:plains
terralith:siberian_grove = minecraft:snowy_taiga
terralith:siberian_taiga = minecraft:snowy_taiga
terralith:skylands = minecraft:stony_peaks
terralith:skylands_autumn = minecraft:stony_peaks
terralith:skylands_spring = minecraft:stony_peaks
terralith:skylands_summer = minecraft:stony_peaks
terralith:skylands_winter = minecraft:snowy_taiga
terralith:snowy_badlands = minecraft:badlands
terralith:snowy_cherry_grove = minecraft:snowy_taiga
terralith:snowy_maple_forest = minecraft:snowy_taiga
terralith:snowy_shield = minecraft:snowy_taiga
terralith:steppe = minecraft:plains
terralith:stony_spires = minecraft:stony_peaks
terralith:temperate_highlands = minecraft:forest
terralith:tropical_jungle = minecraft:jungle
terralith:valley_clearing = minecraft:plains
terralith:volcanic_crater = minecraft:stony_peaks
terralith:volcanic_peaks = minecraft:windswept_savanna
terralith:warm_river = minecraft:swamp
terralith:warped_mesa = minecraft:desert
terralith:white_cliffs = minecraft:snowy_slopes
terralith:white_mesa = minecraft:desert
terralith:windswept_spires = minecraft:windswept_gravelly_hills
terralith:wintry_forest = minecraft:snowy_taiga
terralith:wintry_lowlands = minecraft:snowy_taiga
terralith:yellowstone = minecraft:badlands
terralith:yosemite_cliffs = minecraft:stony_peaks
terralith:yosemite_lowlands = minecraft:forest
terralith:cave/andesite_caves = minecraft:dripstone_caves
terralith:cave/desert_caves = minecraft:dripstone_caves
terralith:cave/diorite_caves = minecraft:dripstone_caves
terralith:cave/fungal_caves = minecraft:lush_caves
terralith:cave/granite_caves = minecraft:dripstone_caves
terralith:cave/ice_caves = minecraft:dripstone_caves
terralith:cave/infested_caves = minecraft:dripstone_caves
terralith:cave/thermal_caves = minecraft:dripstone_caves
terralith:cave/underground_jungle = minecraft:lush_caves
terralith:cave/crystal_caves = minecraft:lush_caves
terralith:cave/deep_caves = minecraft:dripstone_caves
terralith:cave/frostfire_caves = minecraft:lush_caves
terralith:cave/mantle_caves = minecraft:dripstone_caves
terralith:cave/tuff_caves = minecraft:dripstone_caves
`
