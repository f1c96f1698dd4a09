// biomeremap rewrites biome identifiers inside a Minecraft Java Edition
// world's region files, in place, without touching blocks, entities, or
// any other chunk content.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/bwkimmel/biomeremap/commands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&commands.Remap{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
