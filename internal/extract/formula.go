package extract

import (
	"regexp"
	"strings"
)

type formulaFamily struct {
	pattern *regexp.Regexp
	example string
}

// Families are reported in this order when their keywords appear
var formulaFamilies = []formulaFamily{
	{
		pattern: regexp.MustCompile(`(?i)date|dateAdd|dateSubtract|formatDate|now|timestamp`),
		example: "#### Date Function Examples\n```\n// Get current date\nformatDate(now(), \"MMMM D, YYYY\")\n\n// Add days to a date\ndateAdd(prop(\"Due Date\"), 7, \"days\")\n\n// Calculate days between dates\ndateBetween(now(), prop(\"Start Date\"), \"days\")\n```\n\n",
	},
	{
		pattern: regexp.MustCompile(`(?i)if|and|or|not|switch|case`),
		example: "#### Logical Operator Examples\n```\n// If statement\nif(prop(\"Status\") == \"Complete\", \"Done\", \"Pending\")\n\n// Multiple conditions\nif(and(prop(\"Priority\") == \"High\", prop(\"Status\") != \"Complete\"), \"Urgent\", \"Normal\")\n```\n\n",
	},
	{
		pattern: regexp.MustCompile(`(?i)abs|ceil|floor|round|min|max|mod|pow|sqrt`),
		example: "#### Math Function Examples\n```\n// Round a number\nround(prop(\"Score\"))\n\n// Calculate percentage\nformat(prop(\"Completed\") / prop(\"Total\") * 100) + \"%\"\n```\n\n",
	},
	{
		pattern: regexp.MustCompile(`(?i)concat|format|join|length|replace|replaceAll|slice|test`),
		example: "#### String Function Examples\n```\n// Combine text\nconcat(prop(\"First Name\"), \" \", prop(\"Last Name\"))\n\n// Extract part of text\nslice(prop(\"Full Name\"), 0, 1) + \".\"\n```\n\n",
	},
}

const equalsWarning = "Your formula appears to use '=' which is not needed in Notion formulas. Use '==' for equality checks instead.\n\n"

const formulaMistakes = "### Common Formula Mistakes\n" +
	"- Missing parentheses or quotes\n" +
	"- Using commas instead of periods for decimals\n" +
	"- Incorrect property references (case sensitive)\n" +
	"- Using JavaScript syntax instead of Notion's formula syntax\n\n"

// FormulaHelp returns a Notion formula reference tailored to the functions
// mentioned in input
func FormulaHelp(input string) string {
	var b strings.Builder
	b.WriteString("## Notion Formula Help\n\n")
	b.WriteString("### Formula Debugging\n")

	if strings.Contains(input, "=") {
		b.WriteString(equalsWarning)
	}

	for _, f := range formulaFamilies {
		if f.pattern.MatchString(input) {
			b.WriteString(f.example)
		}
	}

	b.WriteString(formulaMistakes)
	b.WriteString("*Copy this formula reference to your Notion page for future use.*")
	return b.String()
}
