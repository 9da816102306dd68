package catalog

// DefaultModules returns the built-in payroll certification course. Each
// call returns a fresh slice.
func DefaultModules() []Module {
	return []Module{
		{
			ID:           "mppf",
			Title:        "Module 1: Payroll Processing Fundamentals",
			Description:  "Master the essential steps of payroll, from employee setup to timekeeping and understanding the basic workflow.",
			Status:       StatusNotStarted,
			Dependencies: []string{},
			Objectives: []string{
				"Understand the complete payroll processing cycle.",
				"Implement effective employee information management.",
				"Evaluate and compare timekeeping systems.",
				"Identify key stages in the payroll workflow.",
			},
		},
		{
			ID:           "mps",
			Title:        "Module 2: Payroll Software & Systems",
			Description:  "Learn to select, implement, and utilize payroll software effectively, including decision-making and vendor comparison.",
			Status:       StatusNotStarted,
			Dependencies: []string{"mppf"},
			Objectives: []string{
				"Categorize different types of payroll software.",
				"Develop a decision tree for selecting appropriate software.",
				"Compare payroll software vendors using a structured matrix.",
				"Simulate a software implementation timeline.",
				"Analyze case studies of system selection processes.",
			},
		},
		{
			ID:           "mtc",
			Title:        "Module 3: Taxation & Compliance",
			Description:  "Navigate the complexities of federal and state payroll taxes, understand compliance requirements, and apply calculations.",
			Status:       StatusNotStarted,
			Dependencies: []string{"mppf"},
			Objectives: []string{
				"Differentiate between federal and state tax obligations.",
				"Utilize a compliance calendar for timely tax activities.",
				"Understand FICA, FUTA, and SUTA through interactive diagrams.",
				"Perform scenario-based tax calculations.",
			},
		},
		{
			ID:           "mbd",
			Title:        "Module 4: Benefits & Deductions",
			Description:  "Manage employee benefits, various deductions (pre-tax, post-tax), garnishments, and PTO accruals accurately.",
			Status:       StatusNotStarted,
			Dependencies: []string{"mppf", "mtc"},
			Objectives: []string{
				"Compare pre-tax and post-tax deductions and their impact.",
				"Simulate the benefits enrollment process.",
				"Understand and process wage garnishments according to legal requirements.",
				"Calculate Paid Time Off (PTO) accruals.",
			},
		},
		{
			ID:           "maem",
			Title:        "Module 5: Auditing & Error Management",
			Description:  "Prepare for payroll audits, identify and correct errors, manage year-end reporting, and use reconciliation templates.",
			Status:       StatusNotStarted,
			Dependencies: []string{"mps", "mtc", "mbd"},
			Objectives: []string{
				"Generate comprehensive audit checklists.",
				"Identify common payroll errors through scenarios.",
				"Manage the year-end payroll reporting timeline effectively.",
				"Utilize templates for payroll reconciliation.",
			},
		},
	}
}

// ProgressUpdate is learner state for one module, kept outside the
// reference data and applied before a catalog is built.
type ProgressUpdate struct {
	Status   Status
	Progress int
	Score    *int
}

// WithProgress returns a copy of modules with learner state applied.
// Updates for unknown module IDs are ignored.
func WithProgress(modules []Module, updates map[string]ProgressUpdate) []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		m = m.clone()
		if u, ok := updates[m.ID]; ok {
			m.Status = u.Status
			m.Progress = u.Progress
			m.Score = nil
			if u.Score != nil {
				s := *u.Score
				m.Score = &s
			}
		}
		out[i] = m
	}
	return out
}
