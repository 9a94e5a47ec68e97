package main

import (
	"context"
	"io"

	"github.com/jcharovsky/docs2skill"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Collector docs2skill.LinkCollector
	Archiver  docs2skill.PageArchiver
	Finalizer docs2skill.BundleFinalizer // nil disables SKILL.md generation

	CreateBundle func(path string) (docs2skill.Bundle, error)
}

// SkillCmd archives the pages linked from URL into a bundle.
type SkillCmd struct {
	URL        string
	Output     string
	AllDomains bool
	Preview    bool
	NoSkill    bool
}
