// Package samples provides built-in markdown documents covering each
// structural context the inspector can classify. They open as scratch
// tabs and double as exploration fixtures.
package samples

// Sample is one built-in document.
type Sample struct {
	Name        string
	Description string
	Content     string
}

var samples = []Sample{
	{
		Name:        "general",
		Description: "Headings, inline marks, links and a quote",
		Content: `# Scratch

Some **bold** and [linked](https://example.com) text.

- first item
- second item

> a quote

` + "```go\nx := 1\n```\n",
	},
	{
		Name:        "table",
		Description: "A pipe table for cell and row classification",
		Content: `# Table sample

| Name | Role |
| ---- | ---- |
| Ada  | Analyst |
| Lin  | Engineer |

Text after the table.
`,
	},
	{
		Name:        "lists",
		Description: "Nested, ordered and task lists with loose items",
		Content: `# List sample

- top level
  - nested bullet
- back at the top

1. first
2. second

- [ ] open task
- [x] done task

- loose item one

- loose item two
`,
	},
	{
		Name:        "math-footnotes",
		Description: "Inline math, display math and footnote references",
		Content: `# Math sample

Euler said $e^{i\pi} + 1 = 0$ once[^1].

$$
\int_0^1 x^2 \, dx
$$

[^1]: apocryphally.
`,
	},
}

// All returns every built-in sample in declaration order.
func All() []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}

// Get returns the sample with the given name.
func Get(name string) (Sample, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// Names lists the sample names in declaration order.
func Names() []string {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name
	}
	return names
}
