package page

const (
	Title = "Shiva ⸱ Machine Learning & Rust & Systems Dev"
	Icon  = "⚙️"

	Headline = "Machine Learning & Rust"
	Subtitle = "Building fast, reliable Machine Learning Algorithms using Rust."

	AboutMe = `I build machine learning algorithms in Rust and Julia, hobby OS experiments, and Rust libraries.
	I focus on performance, correctness, and clean APIs.`

	CardGlyph     = "⚙️"
	CardLinkLabel = "🔗 View on GitHub"

	DefaultHeroImageURL = "https://via.placeholder.com/640x300.png?text=Shiva+Hero"
	DefaultAnimationURL = "https://assets9.lottiefiles.com/packages/lf20_jcikwtux.json"
)

var Timeline = []TimelineEntry{
	{Year: "2024", Text: "Started serious Rust projects"},
	{Year: "2025", Text: "Built an automatic data cleaning Python module"},
}
