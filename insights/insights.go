// Package insights serves the static, pre-built insight articles. Unlike
// the articles section these never touch the database; the set is compiled
// into the binary and edited alongside the code.
package insights

// Insight is one static article on the insights pages
type Insight struct {
	Slug     string
	Title    string
	Category string
	Date     string
	Summary  string
	Body     []string
}

// Insights lists every insight article in display order
var Insights = []Insight{
	{
		Slug:     "hydrogen-sulfide-scavengers-oil-gas",
		Title:    "Choosing H2S Scavengers for Oil & Gas Operations",
		Category: "Industrial Chemicals",
		Date:     "2024-11-12",
		Summary: "Why triazine-based scavengers remain the workhorse for " +
			"hydrogen sulfide removal, and how to size dosing for sour streams.",
		Body: []string{
			"Hydrogen sulfide is both a safety hazard and a corrosion driver " +
				"in upstream operations. Liquid scavengers injected into the " +
				"stream remain the most flexible control for low to moderate " +
				"sour loads.",
			"MEA triazine at 78% concentration offers fast reaction kinetics " +
				"and water-soluble reaction products, which keeps downstream " +
				"separation simple. Dosing is typically staged against measured " +
				"H2S partial pressure rather than a fixed ratio.",
			"Storage and handling follow standard amine practice: carbon steel " +
				"is acceptable for short residence, stainless preferred for " +
				"dosing skids, and temperatures kept below 40°C to limit " +
				"polymer formation.",
		},
	},
	{
		Slug:     "pharma-api-sourcing-quality-checklist",
		Title:    "A Quality Checklist for Sourcing Pharmaceutical APIs",
		Category: "Pharmaceutical APIs",
		Date:     "2024-09-03",
		Summary: "The documents and certifications that separate a reliable " +
			"API supplier from a risky one.",
		Body: []string{
			"Certificates of analysis are the starting point, not the finish " +
				"line. A credible API supplier backs every batch with full " +
				"traceability from raw material lot to finished drum.",
			"Pharmacopoeial grade claims (IP, BP, USP) should be matched " +
				"against the monograph revision in force, and supported by " +
				"method validation data on request.",
			"GMP certification, an up-to-date site master file and a history " +
				"of regulatory inspections round out the picture before any " +
				"commercial discussion starts.",
		},
	},
	{
		Slug:     "copper-sulphate-applications-guide",
		Title:    "Copper Sulphate: An Applications Guide",
		Category: "Industrial Chemicals",
		Date:     "2024-06-21",
		Summary: "From agriculture to water treatment, where industrial " +
			"grade copper sulphate earns its keep.",
		Body: []string{
			"Copper sulphate pentahydrate is one of the most versatile " +
				"inorganic salts in industrial use. Agriculture takes the " +
				"largest share as a fungicide base and micronutrient.",
			"Water treatment plants use controlled dosing for algae control " +
				"in reservoirs, while electroplating shops rely on its high " +
				"purity grades for copper baths.",
			"Specification points to watch are iron content, insoluble matter " +
				"and particle size distribution, all of which vary widely " +
				"between industrial and feed grades.",
		},
	},
}

// BySlug indexes the insight set for detail lookups
var BySlug = func() map[string]*Insight {
	m := make(map[string]*Insight, len(Insights))
	for i := range Insights {
		m[Insights[i].Slug] = &Insights[i]
	}
	return m
}()

// All returns every insight article in display order
func All() []Insight {
	return Insights
}

// Get returns the insight with the given slug, or nil when none matches
func Get(slug string) *Insight {
	return BySlug[slug]
}
