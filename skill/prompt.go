package skill

import (
	"fmt"
	"strings"

	"github.com/jcharovsky/docs2skill"
)

// SystemPrompt instructs the model how to author a SKILL.md manifest and
// how to shape its reply.
const SystemPrompt = `You write agent skills from scraped product documentation.

Produce a SKILL.md file that lets an assistant answer questions about the product using the documentation files shipped next to it.

## SKILL.md format

1. YAML frontmatter at the very top:

    ---
    name: use-productname
    description: |
      What the skill covers and when to use it, with concrete trigger terms.
    version: 1.0.0
    dependencies: package>=1.0.0
    ---

   "version" uses semantic versioning; start new skills at 1.0.0.
   "dependencies" is optional. Include it only when the documentation describes code that needs specific packages.

2. Name rules:
   - lowercase, at most 64 characters, hyphens instead of spaces
   - names the product or service
   - must not contain the words "anthropic" or "claude"
   - must not contain XML tags

3. Description rules:
   - at most 1024 characters, no XML tags
   - third person ("Answers questions about...", never "I can help")
   - says what the skill does and when it applies
   - names the product, its APIs and features so the skill is found by the words users actually type
   - good: "Phantombuster API automation reference. Use when the user asks about Phantombuster agents, API endpoints, automation workflows or scraping with Phantombuster."
   - bad: "Documentation helper", "API reference"

4. Instructions section:
   - keep the body under 500 lines; SKILL.md is the overview and the detail stays in resources/
   - give step-by-step guidance for answering questions
   - tell the assistant to search and read the relevant .md files in the resources/ directory before answering
   - link every resource directly from SKILL.md; no chains of references between resource files
   - leave out time-sensitive statements such as dates or version cutoffs; describe deprecated approaches under "Old patterns"
   - when several approaches exist, recommend one default
   - pick one term for each concept and use it consistently

5. Examples section: two or three sample user questions and how the assistant should go about answering them.

Assume the reader is already capable; only add the context it lacks. Focus on a single product or service.

## Input

You receive the domain name extracted from the URL (for example "getsuperapp", "phantombuster", "n8n"), the source URL, the list of Markdown files in the resources/ directory and short excerpts of some of them. Use forward slashes in every file path (resources/guide.md).

## Output

Reply with a single JSON object and nothing else:

    {"cleaned_name": "productname", "skill_content": "---\nname: use-productname\n..."}

- cleaned_name: the real product name. Drop marketing prefixes such as "get", "try", "use" or "my" ("getsuperapp" becomes "superapp", "trynotion" becomes "notion", "mystripe" becomes "stripe"). Leave names that are already clean alone ("phantombuster", "n8n"). Lowercase only, no spaces or hyphens.
- skill_content: the complete SKILL.md text. Its frontmatter name must be "use-" followed by cleaned_name.`

// BuildUserPrompt renders the request describing a bundle.
func BuildUserPrompt(req docs2skill.ManifestRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extracted domain name from URL: %s\n", req.DomainHint)
	fmt.Fprintf(&sb, "Source URL: %s\n\n", req.SourceURL)

	fmt.Fprintf(&sb, "Scraped documentation files (%d total) in %s/ subdirectory:\n", len(req.Filenames), docs2skill.ResourcesDir)
	for _, name := range req.Filenames {
		fmt.Fprintf(&sb, "- %s/%s\n", docs2skill.ResourcesDir, name)
	}

	sb.WriteString("\nSample content from files:\n")
	for _, e := range req.Excerpts {
		fmt.Fprintf(&sb, "- %s/%s: %s...\n", docs2skill.ResourcesDir, e.Filename, e.Text)
	}

	sb.WriteString("\nPlease clean the product name (if needed) and create a complete SKILL.md file.\n")
	fmt.Fprintf(&sb, "Remember: All documentation files are in the %s/ subdirectory.", docs2skill.ResourcesDir)
	return sb.String()
}
