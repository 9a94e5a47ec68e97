package main

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/jcharovsky/docs2skill"
)

// Run executes the command.
func (c *SkillCmd) Run(deps *Dependencies) error {
	domain := docs2skill.DomainToken(c.URL)

	fmt.Fprintf(deps.Stdout, "Fetching links from %s\n", c.URL)

	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runArchive(deps, domain)
}

func (c *SkillCmd) runPreview(deps *Dependencies) error {
	links := deps.Collector.Collect(deps.Ctx, c.URL, !c.AllDomains)
	for _, u := range links.Sorted() {
		fmt.Fprintln(deps.Stdout, u)
	}
	fmt.Fprintf(deps.Stdout, "Found %d links\n", links.Len())
	return nil
}

func (c *SkillCmd) runArchive(deps *Dependencies, domain string) error {
	out := c.Output
	if out == "" {
		out = filepath.Join("..", domain)
	}

	bundle, err := deps.CreateBundle(out)
	if err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", out, err)
	}

	links := deps.Collector.Collect(deps.Ctx, c.URL, !c.AllDomains)
	if links.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No links found!")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Found %d links\n", links.Len())

	progress := func(p docs2skill.ArchiveProgress) {
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", p.Completed, p.Total, displayPath(p.URL))
		if p.Error != nil && docs2skill.ErrorCode(p.Error) != docs2skill.ESKIPPED {
			fmt.Fprintf(deps.Stderr, "  failed: %v\n", p.Error)
		}
	}

	saved, err := deps.Archiver.ArchiveAll(deps.Ctx, bundle, links.Sorted(), progress)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Scraped %d/%d pages\n", saved, links.Len())

	path := bundle.Path()
	if saved > 0 && !c.NoSkill && deps.Finalizer != nil {
		fmt.Fprintln(deps.Stdout, "Generating SKILL.md...")
		if path, err = deps.Finalizer.Finalize(deps.Ctx, bundle, domain, c.URL); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Bundle saved to %s\n", path)
	return nil
}

// displayPath shows only the path of a URL in progress lines.
func displayPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}
