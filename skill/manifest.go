package skill

import (
	"encoding/json"
	"strings"

	"github.com/jcharovsky/docs2skill"
	"gopkg.in/yaml.v3"
)

// reply is the JSON object the model is asked to return.
type reply struct {
	CleanedName  string `json:"cleaned_name"`
	SkillContent string `json:"skill_content"`
}

// ParseResult decodes the model reply. Bare JSON and JSON inside a Markdown
// code fence are accepted. An undecodable reply yields domainHint as the name
// and the raw reply as the manifest; an empty or path-like cleaned name is
// replaced by domainHint.
func ParseResult(raw, domainHint string) docs2skill.ManifestResult {
	var r reply
	if err := json.Unmarshal([]byte(stripFence(raw)), &r); err != nil {
		return docs2skill.ManifestResult{CleanedName: domainHint, ManifestText: raw}
	}

	name := strings.TrimSpace(r.CleanedName)
	if !isSafeName(name) {
		name = domainHint
	}
	return docs2skill.ManifestResult{CleanedName: name, ManifestText: r.SkillContent}
}

// BundleName returns the directory name for a cleaned product name.
func BundleName(cleanedName string) string {
	return "use-" + cleanedName
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func isSafeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// Frontmatter is the YAML header of a SKILL.md manifest.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// ParseFrontmatter decodes the YAML block delimited by "---" lines at the
// start of a manifest.
func ParseFrontmatter(manifest string) (*Frontmatter, error) {
	text := strings.TrimLeft(manifest, "\ufeff \t\r\n")
	if !strings.HasPrefix(text, "---") {
		return nil, docs2skill.Errorf(docs2skill.ENOTFOUND, "manifest has no frontmatter")
	}

	lines := strings.Split(text, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, docs2skill.Errorf(docs2skill.EINVALID, "manifest frontmatter is not closed")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return nil, docs2skill.Errorf(docs2skill.EINVALID, "invalid manifest frontmatter: %v", err)
	}
	return &fm, nil
}
