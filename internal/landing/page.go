package landing

// Page is the content rendered by the landing page template.
// It carries no behavior; the template decides the markup structure.
type Page struct {
	Title          string
	Heading        string
	Paragraphs     []string
	StylesheetPath string
}

// StylesheetPath is where the embedded stylesheet is served from.
const StylesheetPath = "/static/page.css"

var paragraphs = [...]string{
	"Modern knowledge workers spend 40% of their time on repetitive tasks. " +
		"The average employee switches between eleven different applications daily, " +
		"creating constant context switching that fragments attention and reduces cognitive performance.",
	"While automation tools have proliferated, key gaps remain. " +
		"The complexity of connecting disparate systems creates friction that prevents teams " +
		"from achieving meaningful productivity gains. Knowledge of how to orchestrate multi-platform " +
		"workflows is concentrated within technical teams, limiting both adoption and the broader impact of automation.",
	"Despite their potential, these systems remain difficult for people to customize to their " +
		"specific needs and processes. The result is a growing productivity paradox: more tools, " +
		"more complexity, less actual work accomplished.",
	"Digital burnout costs businesses $322 billion annually in lost productivity. " +
		"Teams are drowning in app switching and manual coordination tasks that could be eliminated entirely.",
}

// DefaultPage returns the FLOW7 landing page content.
// Each call returns a fresh copy of the paragraphs.
func DefaultPage() Page {
	return Page{
		Title:          "Flow7",
		Heading:        "FLOW7",
		Paragraphs:     append([]string(nil), paragraphs[:]...),
		StylesheetPath: StylesheetPath,
	}
}
