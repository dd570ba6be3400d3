package rubric

func init() {
	if err := validateItems(seedItems); err != nil {
		panic(err)
	}
	t = buildTable(seedItems)
}

var seedItems = []Item{
	// Critical
	{Name: "Not a Class Project", Max: 1, Category: CategoryCritical,
		Criteria: "No file names, README text, or code comments indicate the work is a course assignment."},
	{Name: "LLM Usage Documented", Max: 1, Category: CategoryCritical,
		Criteria: "Any use of LLMs or coding assistants is disclosed, with chat logs where applicable."},
	{Name: "Reproducible Build", Max: 1, Category: CategoryCritical,
		Criteria: "The paper renders from the repository without manual steps."},

	// Documentation
	{Name: "Title", Max: 2, Category: CategoryDocumentation,
		Criteria: "An informative title that conveys the main finding."},
	{Name: "Abstract", Max: 4, Category: CategoryDocumentation,
		Criteria: "Four sentences: what was done, what was found, and why it matters."},
	{Name: "README", Max: 2, Category: CategoryDocumentation,
		Criteria: "README explains the repository structure and how to reproduce the paper."},
	{Name: "Introduction", Max: 4, Category: CategoryDocumentation,
		Criteria: "Context, gap, what was done, what was found, and the paper's structure."},
	{Name: "Cross-references", Max: 1, Category: CategoryDocumentation,
		Criteria: "Figures and tables are numbered and referenced in the text."},

	// Analysis
	{Name: "Estimand", Max: 1, Category: CategoryAnalysis,
		Criteria: "The estimand is clearly stated in the introduction."},
	{Name: "Data", Max: 10, Category: CategoryAnalysis,
		Criteria: "Thorough discussion of the dataset, its variables, and how it was constructed."},
	{Name: "Measurement", Max: 4, Category: CategoryAnalysis,
		Criteria: "How real-world phenomena became entries in the dataset."},
	{Name: "Results", Max: 10, Category: CategoryAnalysis,
		Criteria: "Results are clearly presented with summary statistics, tables, and graphs."},
	{Name: "Discussion", Max: 10, Category: CategoryAnalysis,
		Criteria: "What was learned about the world, weaknesses, and next steps."},

	// Quality
	{Name: "Prose", Max: 6, Category: CategoryQuality,
		Criteria: "Clear, concise, well-structured writing free of filler."},
	{Name: "Graphs and Tables", Max: 4, Category: CategoryQuality,
		Criteria: "Well-formatted, labelled, and of publication quality."},
	{Name: "Citations", Max: 4, Category: CategoryQuality,
		Criteria: "Data, software (including R or Python), and literature are cited properly."},
	{Name: "Referencing", Max: 4, Category: CategoryQuality,
		Criteria: "A bibliography built with BibTeX or equivalent."},

	// Methodology
	{Name: "Model", Max: 10, Category: CategoryMethodology,
		Criteria: "The model is specified, justified, and its assumptions discussed."},
	{Name: "Model Validation", Max: 4, Category: CategoryMethodology,
		Criteria: "Out-of-sample checks, RMSE, or posterior predictive checks are reported."},
	{Name: "Surveys and Sampling", Max: 10, Category: CategoryMethodology,
		Criteria: "An appendix on sampling, observational data, or survey methodology."},
	{Name: "Simulation", Max: 4, Category: CategoryMethodology,
		Criteria: "The dataset is simulated before real data is used."},

	// Technical
	{Name: "Tests", Max: 4, Category: CategoryTechnical,
		Criteria: "Tests are written for the simulated and the analysis data."},
	{Name: "Reproducibility", Max: 4, Category: CategoryTechnical,
		Criteria: "Scripts, seeds, and package versions make the analysis reproducible."},
	{Name: "Code Style", Max: 2, Category: CategoryTechnical,
		Criteria: "Code is linted, consistently styled, and commented."},
	{Name: "Commits", Max: 2, Category: CategoryTechnical,
		Criteria: "Commits are frequent and messages are meaningful."},
}
