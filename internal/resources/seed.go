package resources

// DefaultResources returns the built-in payroll resource library. Each call
// returns a fresh slice.
func DefaultResources() []Resource {
	return []Resource{
		// Payroll Processing Fundamentals
		{
			ID:                "res_mppf_timeline",
			Title:             "Interactive Timeline: Payroll Steps",
			Type:              TypeTimeline,
			URL:               "#moodle-interactive-timeline-mppf",
			Description:       "Visualize the sequential steps in a typical payroll processing cycle.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"payroll process", "timeline", "interactive"},
		},
		{
			ID:                "res_mppf_checklist_empinfo",
			Title:             "Employee Information Management Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/mppf_empinfo_checklist.pdf",
			Description:       "A checklist to ensure all necessary employee data is collected and managed correctly.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"employee data", "checklist", "management"},
		},
		{
			ID:                "res_mppf_tool_timekeeping",
			Title:             "Timekeeping System Comparison Tool",
			Type:              TypeMatrix,
			URL:               "/resources/mppf_timekeeping_matrix.xlsx",
			Description:       "A template to compare features of different timekeeping systems.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"timekeeping", "comparison", "tool", "matrix"},
		},
		{
			ID:                "res_mppf_scenario_fraudcase",
			Title:             "Interactive Scenario: Fundamentals Case Study",
			Type:              TypeInteractiveScenario,
			URL:               "#moodle-scenario-mppf-fraud",
			Description:       "Explore a real-world example related to payroll fundamentals in an interactive scenario.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"interactive scenario", "case study", "fundamentals"},
		},
		{
			ID:                "res_mppf_quiz_workflow",
			Title:             "Knowledge Check: Payroll Process Workflow",
			Type:              TypeLink,
			URL:               "#moodle-quiz-mppf-workflow",
			Description:       "Test your understanding of the payroll process workflow. (Moodle Quiz)",
			ModuleAffiliation: "mppf",
			Tags:              []string{"quiz", "knowledge check", "workflow"},
		},
		{
			ID:                "res_mppf_simulation_basicsteps",
			Title:             "Process Simulation: Basic Payroll Steps",
			Type:              TypeSimulation,
			URL:               "#moodle-simulation-mppf-basicsteps",
			Description:       "Step-by-step walkthrough of fundamental payroll processing actions.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"simulation", "payroll steps"},
		},
		{
			ID:                "res_mppf_dl_compliance_checklist",
			Title:             "Downloadable: Fundamentals Compliance Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/mppf_compliance_checklist_generic.pdf",
			Description:       "A general compliance checklist for payroll fundamentals.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"downloadable", "compliance", "checklist", "fundamentals"},
		},
		{
			ID:                "res_mppf_dl_tax_worksheet",
			Title:             "Downloadable: Basic Tax Calculation Worksheet",
			Type:              TypeWorksheet,
			URL:               "/resources/mppf_tax_worksheet_basic.xlsx",
			Description:       "A worksheet for practicing basic tax calculations relevant to fundamentals.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"downloadable", "tax calculation", "worksheet", "fundamentals"},
		},
		{
			ID:                "res_mppf_dl_audit_template",
			Title:             "Downloadable: Basic Audit Template",
			Type:              TypeTemplate,
			URL:               "/resources/mppf_audit_template_basic.docx",
			Description:       "A basic audit template for fundamental payroll processes.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"downloadable", "audit", "template", "fundamentals"},
		},
		{
			ID:                "res_mppf_dl_software_eval_matrix",
			Title:             "Downloadable: Basic Software Feature Matrix",
			Type:              TypeMatrix,
			URL:               "/resources/mppf_software_eval_matrix_basic.xlsx",
			Description:       "A basic matrix for evaluating essential software features.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"downloadable", "software evaluation", "matrix", "fundamentals"},
		},

		// Payroll Software & Systems
		{
			ID:                "res_mps_tree_softwarecat",
			Title:             "Software Category Decision Tree",
			Type:              TypeInteractiveScenario,
			URL:               "#moodle-decisiontree-mps-softwarecat",
			Description:       "An interactive decision tree to help select the right category of payroll software.",
			ModuleAffiliation: "mps",
			Tags:              []string{"software selection", "decision tree", "interactive"},
		},
		{
			ID:                "res_mps_matrix_vendor",
			Title:             "Vendor Comparison Matrix (Interactive)",
			Type:              TypeMatrix,
			URL:               "#moodle-interactivematrix-mps-vendor",
			Description:       "Interactively compare different payroll software vendors based on various criteria. (Moodle H5P)",
			ModuleAffiliation: "mps",
			Tags:              []string{"vendor comparison", "matrix", "interactive"},
		},
		{
			ID:                "res_mps_sim_implementation",
			Title:             "Implementation Timeline Simulator",
			Type:              TypeSimulation,
			URL:               "#moodle-simulation-mps-implementation",
			Description:       "Simulate the stages and timeline for implementing a new payroll system.",
			ModuleAffiliation: "mps",
			Tags:              []string{"software implementation", "timeline", "simulation"},
		},
		{
			ID:                "res_mps_casestudy_selection",
			Title:             "Case Study: System Selection Process",
			Type:              TypeCaseStudy,
			URL:               "/resources/mps_casestudy_selection.pdf",
			Description:       "A detailed case study analyzing a company's payroll system selection process.",
			ModuleAffiliation: "mps",
			Tags:              []string{"case study", "system selection", "software"},
		},
		{
			ID:                "res_mps_quiz_eval_criteria",
			Title:             "Knowledge Check: Software Evaluation Criteria",
			Type:              TypeLink,
			URL:               "#moodle-quiz-mps-evaluation",
			Description:       "Test your knowledge on key criteria for evaluating payroll software. (Moodle Quiz)",
			ModuleAffiliation: "mps",
			Tags:              []string{"quiz", "software evaluation"},
		},
		{
			ID:                "res_mps_dl_compliance_checklist",
			Title:             "Downloadable: Software Implementation Compliance Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/mps_compliance_checklist_software.pdf",
			Description:       "A compliance checklist for software selection and implementation.",
			ModuleAffiliation: "mps",
			Tags:              []string{"downloadable", "compliance", "checklist", "software"},
		},
		{
			ID:                "res_mps_dl_tax_worksheet",
			Title:             "Downloadable: Tax Implications Worksheet for Software",
			Type:              TypeWorksheet,
			URL:               "/resources/mps_tax_worksheet_software.xlsx",
			Description:       "Worksheet to consider tax setup during software evaluation.",
			ModuleAffiliation: "mps",
			Tags:              []string{"downloadable", "tax calculation", "worksheet", "software"},
		},
		{
			ID:                "res_mps_dl_audit_template_software",
			Title:             "Downloadable: Software Setup Audit Template",
			Type:              TypeTemplate,
			URL:               "/resources/mps_audit_template_software.docx",
			Description:       "Template for auditing payroll software configuration.",
			ModuleAffiliation: "mps",
			Tags:              []string{"downloadable", "audit", "template", "software"},
		},
		{
			ID:                "res_mps_dl_software_eval_matrix",
			Title:             "Downloadable: Software Evaluation Matrix Template",
			Type:              TypeMatrix,
			URL:               "/resources/mps_software_eval_matrix_template.xlsx",
			Description:       "A comprehensive template for evaluating and comparing payroll software vendors.",
			ModuleAffiliation: "mps",
			Tags:              []string{"downloadable", "software evaluation", "matrix", "template"},
		},

		// Taxation & Compliance
		{
			ID:                "res_mtc_calc_fedstate",
			Title:             "Federal vs State Tax Calculator",
			Type:              TypeCalculator,
			URL:               "#moodle-tool-mtc-taxcalculator",
			Description:       "A tool to help understand differences in federal and state tax calculations. (External or Moodle Tool)",
			ModuleAffiliation: "mtc",
			Tags:              []string{"tax calculator", "federal tax", "state tax"},
		},
		{
			ID:                "res_mtc_template_calendar",
			Title:             "Compliance Calendar Template",
			Type:              TypeTemplate,
			URL:               "/resources/mtc_compliance_calendar.ics",
			Description:       "A downloadable template for tracking key payroll compliance deadlines.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"compliance calendar", "template", "deadlines"},
		},
		{
			ID:                "res_mtc_diagram_tax",
			Title:             "FICA/FUTA/SUTA Interactive Diagrams",
			Type:              TypeDiagram,
			URL:               "#moodle-interactivediagram-mtc-tax",
			Description:       "Interactive diagrams explaining FICA, FUTA, and SUTA contributions. (Moodle H5P)",
			ModuleAffiliation: "mtc",
			Tags:              []string{"tax diagrams", "fica", "futa", "suta", "interactive"},
		},
		{
			ID:                "res_mtc_scenario_taxcalc",
			Title:             "Scenario-Based Tax Calculations",
			Type:              TypeInteractiveScenario,
			URL:               "#moodle-scenario-mtc-taxcalc",
			Description:       "Work through scenarios requiring various payroll tax calculations.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"tax calculation", "interactive scenario", "compliance"},
		},
		{
			ID:                "res_mtc_quiz_taxforms",
			Title:             "Knowledge Check: Federal Tax Forms",
			Type:              TypeLink,
			URL:               "#moodle-quiz-mtc-taxforms",
			Description:       "Quiz on common federal payroll tax forms. (Moodle Quiz)",
			ModuleAffiliation: "mtc",
			Tags:              []string{"quiz", "tax forms", "federal"},
		},
		{
			ID:                "res_mtc_simulation_taxfiling",
			Title:             "Process Simulation: Quarterly Tax Filing",
			Type:              TypeSimulation,
			URL:               "#moodle-simulation-mtc-taxfiling",
			Description:       "Simulate the steps involved in a quarterly payroll tax filing.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"simulation", "tax filing", "compliance"},
		},
		{
			ID:                "res_mtc_dl_compliance_checklist_tax",
			Title:             "Downloadable: Tax Compliance Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/mtc_tax_compliance_checklist.pdf",
			Description:       "A checklist for ensuring tax compliance in payroll.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"downloadable", "compliance", "checklist", "taxation"},
		},
		{
			ID:                "res_mtc_dl_tax_worksheet_advanced",
			Title:             "Downloadable: Advanced Tax Calculation Worksheet",
			Type:              TypeWorksheet,
			URL:               "/resources/mtc_tax_worksheet_advanced.xlsx",
			Description:       "A worksheet for practicing complex payroll tax calculations.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"downloadable", "tax calculation", "worksheet", "advanced"},
		},
		{
			ID:                "res_mtc_dl_audit_template_tax",
			Title:             "Downloadable: Tax Audit Preparation Template",
			Type:              TypeTemplate,
			URL:               "/resources/mtc_audit_template_tax.docx",
			Description:       "Template for preparing for a payroll tax audit.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"downloadable", "audit", "template", "taxation"},
		},
		{
			ID:                "res_mtc_dl_software_eval_matrix_tax",
			Title:             "Downloadable: Software Tax Feature Matrix",
			Type:              TypeMatrix,
			URL:               "/resources/mtc_software_eval_matrix_tax.xlsx",
			Description:       "Matrix for evaluating tax compliance features in payroll software.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"downloadable", "software evaluation", "matrix", "taxation"},
		},

		// Benefits & Deductions
		{
			ID:                "res_mbd_tool_preposttax",
			Title:             "Pre-tax vs Post-tax Comparison Tool",
			Type:              TypeMatrix,
			URL:               "#moodle-tool-mbd-preposttax",
			Description:       "A tool to compare the impact of pre-tax and post-tax deductions. (Moodle Tool or Spreadsheet)",
			ModuleAffiliation: "mbd",
			Tags:              []string{"benefits", "deductions", "comparison tool", "matrix"},
		},
		{
			ID:                "res_mbd_sim_enrollment",
			Title:             "Benefits Enrollment Simulator",
			Type:              TypeSimulation,
			URL:               "#moodle-simulation-mbd-enrollment",
			Description:       "Simulate the process of enrolling an employee in various benefit plans.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"benefits enrollment", "simulation", "hr"},
		},
		{
			ID:                "res_mbd_workflow_garnishment",
			Title:             "Garnishment Processing Workflow",
			Type:              TypeWorkflow,
			URL:               "/resources/mbd_garnishment_workflow.pdf",
			Description:       "A visual workflow detailing the steps for processing wage garnishments.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"garnishments", "workflow", "legal"},
		},
		{
			ID:                "res_mbd_calc_pto",
			Title:             "PTO Accrual Calculator",
			Type:              TypeCalculator,
			URL:               "#moodle-tool-mbd-ptocalculator",
			Description:       "A tool for calculating employee Paid Time Off accruals based on different policies.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"pto", "calculator", "accruals"},
		},
		{
			ID:                "res_mbd_scenario_complex_deductions",
			Title:             "Interactive Scenario: Handling Complex Deductions",
			Type:              TypeInteractiveScenario,
			URL:               "#moodle-scenario-mbd-deductions",
			Description:       "Scenario focusing on calculating and processing complex employee deductions.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"interactive scenario", "deductions"},
		},
		{
			ID:                "res_mbd_quiz_benefittypes",
			Title:             "Knowledge Check: Benefit Types",
			Type:              TypeLink,
			URL:               "#moodle-quiz-mbd-benefittypes",
			Description:       "Quiz on different types of employee benefits. (Moodle Quiz)",
			ModuleAffiliation: "mbd",
			Tags:              []string{"quiz", "benefits"},
		},
		{
			ID:                "res_mbd_dl_compliance_checklist_benefits",
			Title:             "Downloadable: Benefits Compliance Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/mbd_benefits_compliance_checklist.pdf",
			Description:       "Checklist for ensuring compliance in benefits administration.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"downloadable", "compliance", "benefits", "checklist"},
		},
		{
			ID:                "res_mbd_dl_tax_worksheet_benefits",
			Title:             "Downloadable: Tax Worksheet for Benefits",
			Type:              TypeWorksheet,
			URL:               "/resources/mbd_tax_worksheet_benefits.xlsx",
			Description:       "Worksheet to understand tax implications of various benefits.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"downloadable", "tax calculation", "worksheet", "benefits"},
		},
		{
			ID:                "res_mbd_dl_audit_template_benefits",
			Title:             "Downloadable: Benefits Audit Template",
			Type:              TypeTemplate,
			URL:               "/resources/mbd_audit_template_benefits.docx",
			Description:       "Template for auditing benefits administration processes.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"downloadable", "audit", "template", "benefits"},
		},
		{
			ID:                "res_mbd_dl_software_eval_matrix_benefits",
			Title:             "Downloadable: Benefits Admin Software Matrix",
			Type:              TypeMatrix,
			URL:               "/resources/mbd_software_eval_matrix_benefits.xlsx",
			Description:       "Matrix for evaluating benefits administration features in software.",
			ModuleAffiliation: "mbd",
			Tags:              []string{"downloadable", "software evaluation", "matrix", "benefits"},
		},

		// Auditing & Error Management
		{
			ID:                "res_maem_template_auditchecklist_generator",
			Title:             "Audit Checklist Generator (Template)",
			Type:              TypeTemplate,
			URL:               "/resources/maem_audit_checklist_template.docx",
			Description:       "A template to help generate a customized payroll audit checklist.",
			ModuleAffiliation: "maem",
			Tags:              []string{"audit checklist", "template", "generator"},
		},
		{
			ID:                "res_maem_scenario_errorid",
			Title:             "Error Identification Scenarios",
			Type:              TypeInteractiveScenario,
			URL:               "#moodle-scenario-maem-errorid",
			Description:       "Interactive scenarios to practice identifying common payroll errors.",
			ModuleAffiliation: "maem",
			Tags:              []string{"error identification", "interactive scenario", "auditing"},
		},
		{
			ID:                "res_maem_timeline_yearend",
			Title:             "Year-End Reporting Timeline",
			Type:              TypeTimeline,
			URL:               "/resources/maem_yearend_timeline.pdf",
			Description:       "A visual timeline for managing year-end payroll reporting tasks.",
			ModuleAffiliation: "maem",
			Tags:              []string{"year-end reporting", "timeline", "compliance"},
		},
		{
			ID:                "res_maem_template_reconciliation",
			Title:             "Reconciliation Templates",
			Type:              TypeTemplate,
			URL:               "/resources/maem_reconciliation_templates.xlsx",
			Description:       "Downloadable templates for payroll reconciliation processes.",
			ModuleAffiliation: "maem",
			Tags:              []string{"reconciliation", "template", "auditing"},
		},
		{
			ID:                "res_maem_quiz_audit_procedures",
			Title:             "Knowledge Check: Audit Procedures",
			Type:              TypeLink,
			URL:               "#moodle-quiz-maem-auditprocedures",
			Description:       "Quiz covering payroll audit procedures. (Moodle Quiz)",
			ModuleAffiliation: "maem",
			Tags:              []string{"quiz", "auditing"},
		},
		{
			ID:                "res_maem_simulation_error_correction",
			Title:             "Process Simulation: Correcting a Payroll Error",
			Type:              TypeSimulation,
			URL:               "#moodle-simulation-maem-errorcorrection",
			Description:       "Simulate the steps involved in correcting a payroll error and reissuing payment.",
			ModuleAffiliation: "maem",
			Tags:              []string{"simulation", "error correction"},
		},
		{
			ID:                "res_maem_dl_compliance_checklist_audit",
			Title:             "Downloadable: Audit & Error Mgmt Compliance Checklist",
			Type:              TypeChecklist,
			URL:               "/resources/maem_compliance_checklist_audit.pdf",
			Description:       "A compliance checklist focused on auditing and error management.",
			ModuleAffiliation: "maem",
			Tags:              []string{"downloadable", "compliance", "checklist", "auditing"},
		},
		{
			ID:                "res_maem_dl_tax_worksheet_yearend",
			Title:             "Downloadable: Year-End Tax Reconciliation Worksheet",
			Type:              TypeWorksheet,
			URL:               "/resources/maem_tax_worksheet_yearend.xlsx",
			Description:       "Worksheet for year-end tax reconciliation tasks.",
			ModuleAffiliation: "maem",
			Tags:              []string{"downloadable", "tax calculation", "worksheet", "year-end"},
		},
		{
			ID:                "res_maem_dl_audit_template_full",
			Title:             "Downloadable: Comprehensive Audit Template",
			Type:              TypeTemplate,
			URL:               "/resources/maem_audit_template_full.docx",
			Description:       "A comprehensive template for conducting payroll audits.",
			ModuleAffiliation: "maem",
			Tags:              []string{"downloadable", "audit", "template", "comprehensive"},
		},
		{
			ID:                "res_maem_dl_software_eval_matrix_reporting",
			Title:             "Downloadable: Reporting Software Feature Matrix",
			Type:              TypeMatrix,
			URL:               "/resources/maem_software_eval_matrix_reporting.xlsx",
			Description:       "Matrix for evaluating reporting and auditing features in payroll software.",
			ModuleAffiliation: "maem",
			Tags:              []string{"downloadable", "software evaluation", "matrix", "reporting"},
		},

		// General
		{
			ID:                "res_gen_ethics",
			Title:             "Ethics in Payroll Management",
			Type:              TypeDocument,
			URL:               "/resources/ethics-in-payroll.pdf",
			Description:       "A document outlining ethical guidelines and best practices for payroll professionals.",
			ModuleAffiliation: "mppf",
			Tags:              []string{"ethics", "professionalism", "compliance"},
		},
		{
			ID:                "res_gen_statelaws",
			Title:             "State Payroll Resources (DOL)",
			Type:              TypeLink,
			URL:               "https://www.dol.gov/agencies/whd/state-data",
			Description:       "Links to Department of Labor resources for state-specific payroll laws.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"state laws", "compliance", "dol"},
		},
		{
			ID:                "res_gen_irspub15",
			Title:             "IRS Publication 15 (Circular E), Employer's Tax Guide",
			Type:              TypePDF,
			URL:               "https://www.irs.gov/pub/irs-pdf/p15.pdf",
			Description:       "Official IRS guide for employers on federal tax responsibilities.",
			ModuleAffiliation: "mtc",
			Tags:              []string{"external", "irs", "link", "federal tax"},
		},
	}
}
