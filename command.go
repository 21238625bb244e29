package cuesheet

import (
	"github.com/simonhull/cuesheet/internal/command"
)

// Command is an alias to command.Command: one tokenized directive.
type Command = command.Command

// CommandKind is an alias to command.Kind.
type CommandKind = command.Kind

// Re-export command kinds.
const (
	CommandEmpty      = command.Empty
	CommandRem        = command.Rem
	CommandTitle      = command.Title
	CommandPerformer  = command.Performer
	CommandSongwriter = command.Songwriter
	CommandCatalog    = command.Catalog
	CommandCDTextFile = command.CDTextFile
	CommandFile       = command.File
	CommandTrack      = command.Track
	CommandIndex      = command.Index
	CommandPregap     = command.Pregap
	CommandPostgap    = command.Postgap
	CommandISRC       = command.ISRC
	CommandFlags      = command.Flags
)

// ParseCommand tokenizes a single line without applying it. A blank line
// yields a CommandEmpty command.
func ParseCommand(line string) (Command, error) {
	return command.Parse(line)
}
