package content

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v2"
)

type scaffoldMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Description string `yaml:"description,omitempty"`
	Draft       bool   `yaml:"draft,omitempty"`
}

// SlugFromTitle lowercases title and joins its letters and digits with dashes.
func SlugFromTitle(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// Scaffold returns the source of a new post with its front matter filled in.
func Scaffold(title, description string, date time.Time, draft bool) ([]byte, error) {
	fm, err := yaml.Marshal(scaffoldMatter{
		Title:       title,
		Date:        date.Format(time.RFC3339),
		Description: description,
		Draft:       draft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	return []byte(fmt.Sprintf("---\n%s---\n\n", fm)), nil
}
