package cuesheet

import (
	"github.com/simonhull/cuesheet/internal/types"
)

// Chapter is an alias to types.Chapter. See File.Chapters.
type Chapter = types.Chapter
