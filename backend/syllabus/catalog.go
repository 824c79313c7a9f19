package syllabus

// Chapter is the smallest trackable unit within a paper.
type Chapter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Paper is a named examinable unit from the predefined catalog.
type Paper struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

const (
	CourseCS    = "CS"
	CourseCA    = "CA"
	CourseCMA   = "CMA"
	CourseOther = "Other"

	Group1     = "Group 1"
	Group2     = "Group 2"
	BothGroups = "Both Groups"

	// LevelNotApplicable is the only level for the "Other" course, which has
	// no predefined papers.
	LevelNotApplicable = "Not Applicable"
)

// catalog maps course -> level -> group -> papers. Paper and chapter ids are
// storage keys in user progress documents: never renumber or reuse them.
var catalog = map[string]map[string]map[string][]Paper{
	CourseCS: {
		"Professional": {
			Group1: {
				{
					ID:   "cs_prof_g1_p1",
					Name: "Environmental, Social and Governance (ESG) - Principles & Practice",
					Chapters: []Chapter{
						{ID: "esg_ch1", Name: "Chapter 1: Governance and Sustainability"},
						{ID: "esg_ch2", Name: "Chapter 2: Risk Management"},
						{ID: "esg_ch3", Name: "Chapter 3: ESG Framework and Standards"},
						{ID: "esg_ch4", Name: "Chapter 4: Environmental Principles"},
						{ID: "esg_ch5", Name: "Chapter 5: Social Responsibility"},
						{ID: "esg_ch6", Name: "Chapter 6: ESG Reporting and Disclosures"},
					},
				},
				{
					ID:   "cs_prof_g1_p2",
					Name: "Drafting, Pleadings and Appearances",
					Chapters: []Chapter{
						{ID: "dpa_ch1", Name: "Chapter 1: Introduction to Drafting"},
						{ID: "dpa_ch2", Name: "Chapter 2: Commercial Contracts"},
						{ID: "dpa_ch3", Name: "Chapter 3: Corporate Documentation"},
						{ID: "dpa_ch4", Name: "Chapter 4: Pleadings Before Courts"},
						{ID: "dpa_ch5", Name: "Chapter 5: Appearances Before Tribunals"},
						{ID: "dpa_ch6", Name: "Chapter 6: Legal Opinion Writing"},
					},
				},
				{
					ID:   "cs_prof_g1_p3",
					Name: "Secretarial Audit, Compliance Management and Due Diligence",
					Chapters: []Chapter{
						{ID: "sa_ch1", Name: "Chapter 1: Secretarial Audit Concepts"},
						{ID: "sa_ch2", Name: "Chapter 2: Audit Planning and Execution"},
						{ID: "sa_ch3", Name: "Chapter 3: Compliance Management System"},
						{ID: "sa_ch4", Name: "Chapter 4: Due Diligence Process"},
						{ID: "sa_ch5", Name: "Chapter 5: Secretarial Audit Report"},
						{ID: "sa_ch6", Name: "Chapter 6: Annual Compliance Certificate"},
					},
				},
			},
			Group2: {
				{
					ID:   "cs_prof_g2_p1",
					Name: "Corporate Restructuring and Insolvency",
					Chapters: []Chapter{
						{ID: "cri_ch1", Name: "Chapter 1: Corporate Restructuring Fundamentals"},
						{ID: "cri_ch2", Name: "Chapter 2: Mergers and Acquisitions"},
						{ID: "cri_ch3", Name: "Chapter 3: Demergers and Spin-offs"},
						{ID: "cri_ch4", Name: "Chapter 4: Insolvency and Bankruptcy Code"},
						{ID: "cri_ch5", Name: "Chapter 5: Corporate Insolvency Resolution"},
						{ID: "cri_ch6", Name: "Chapter 6: Liquidation Process"},
					},
				},
				{
					ID:   "cs_prof_g2_p2",
					Name: "Resolution of Corporate Disputes, Non-Compliances & Remedies",
					Chapters: []Chapter{
						{ID: "rcd_ch1", Name: "Chapter 1: Corporate Dispute Resolution Mechanisms"},
						{ID: "rcd_ch2", Name: "Chapter 2: Arbitration and Mediation"},
						{ID: "rcd_ch3", Name: "Chapter 3: Non-Compliance and Penalties"},
						{ID: "rcd_ch4", Name: "Chapter 4: Enforcement Remedies"},
						{ID: "rcd_ch5", Name: "Chapter 5: Investor Grievance Redressal"},
						{ID: "rcd_ch6", Name: "Chapter 6: NCLT and NCLAT Procedures"},
					},
				},
				{
					ID:   "cs_prof_g2_p3",
					Name: "Multidisciplinary Case Studies",
					Chapters: []Chapter{
						{ID: "mcs_ch1", Name: "Chapter 1: Integrated Case Analysis"},
						{ID: "mcs_ch2", Name: "Chapter 2: Corporate Governance Cases"},
						{ID: "mcs_ch3", Name: "Chapter 3: Compliance Framework Cases"},
						{ID: "mcs_ch4", Name: "Chapter 4: M&A Transaction Cases"},
						{ID: "mcs_ch5", Name: "Chapter 5: Insolvency Resolution Cases"},
						{ID: "mcs_ch6", Name: "Chapter 6: Ethical Dilemma Cases"},
					},
				},
			},
		},
		"Executive": {
			Group1: {
				{
					ID:   "cs_exec_g1_p1",
					Name: "Company Law",
					Chapters: []Chapter{
						{ID: "cl_ch1", Name: "Chapter 1: Introduction to Companies Act, 2013"},
						{ID: "cl_ch2", Name: "Chapter 2: Incorporation of Company"},
						{ID: "cl_ch3", Name: "Chapter 3: Share Capital and Debentures"},
						{ID: "cl_ch4", Name: "Chapter 4: Board Meetings and Procedures"},
					},
				},
				{
					ID:   "cs_exec_g1_p2",
					Name: "Cost and Management Accounting",
					Chapters: []Chapter{
						{ID: "cma_ch1", Name: "Chapter 1: Cost Accounting Fundamentals"},
						{ID: "cma_ch2", Name: "Chapter 2: Cost Classification"},
						{ID: "cma_ch3", Name: "Chapter 3: Budgeting and Control"},
					},
				},
			},
			Group2: {
				{
					ID:   "cs_exec_g2_p1",
					Name: "Economic and Commercial Laws",
					Chapters: []Chapter{
						{ID: "ecl_ch1", Name: "Chapter 1: Indian Contract Act"},
						{ID: "ecl_ch2", Name: "Chapter 2: Sale of Goods Act"},
						{ID: "ecl_ch3", Name: "Chapter 3: Negotiable Instruments Act"},
					},
				},
				{
					ID:   "cs_exec_g2_p2",
					Name: "Securities Laws and Capital Markets",
					Chapters: []Chapter{
						{ID: "slcm_ch1", Name: "Chapter 1: SEBI Act and Regulations"},
						{ID: "slcm_ch2", Name: "Chapter 2: Primary Market Operations"},
						{ID: "slcm_ch3", Name: "Chapter 3: Secondary Market Regulations"},
					},
				},
			},
		},
	},
	CourseCA: {
		"Foundation": {
			Group1: {
				{
					ID:   "ca_found_g1_p1",
					Name: "Principles and Practice of Accounting",
					Chapters: []Chapter{
						{ID: "ppa_ch1", Name: "Chapter 1: Theoretical Framework"},
						{ID: "ppa_ch2", Name: "Chapter 2: Accounting Process"},
						{ID: "ppa_ch3", Name: "Chapter 3: Bank Reconciliation Statement"},
						{ID: "ppa_ch4", Name: "Chapter 4: Inventories"},
					},
				},
				{
					ID:   "ca_found_g1_p2",
					Name: "Business Laws",
					Chapters: []Chapter{
						{ID: "bl_ch1", Name: "Chapter 1: Indian Contract Act, 1872"},
						{ID: "bl_ch2", Name: "Chapter 2: Sale of Goods Act, 1930"},
						{ID: "bl_ch3", Name: "Chapter 3: Indian Partnership Act, 1932"},
					},
				},
			},
			Group2: {
				{
					ID:   "ca_found_g2_p1",
					Name: "Business Mathematics and Statistics",
					Chapters: []Chapter{
						{ID: "bms_ch1", Name: "Chapter 1: Ratio and Proportion"},
						{ID: "bms_ch2", Name: "Chapter 2: Statistical Description of Data"},
						{ID: "bms_ch3", Name: "Chapter 3: Measures of Central Tendency"},
					},
				},
				{
					ID:   "ca_found_g2_p2",
					Name: "Business Economics",
					Chapters: []Chapter{
						{ID: "be_ch1", Name: "Chapter 1: Introduction to Microeconomics"},
						{ID: "be_ch2", Name: "Chapter 2: Theory of Demand and Supply"},
						{ID: "be_ch3", Name: "Chapter 3: Production and Cost"},
					},
				},
			},
		},
		"Intermediate": {
			Group1: {
				{
					ID:   "ca_inter_g1_p1",
					Name: "Advanced Accounting",
					Chapters: []Chapter{
						{ID: "aa_ch1", Name: "Chapter 1: Framework for Preparation of Financial Statements"},
						{ID: "aa_ch2", Name: "Chapter 2: Company Accounts"},
					},
				},
			},
			Group2: {
				{
					ID:   "ca_inter_g2_p1",
					Name: "Cost and Management Accounting",
					Chapters: []Chapter{
						{ID: "cma2_ch1", Name: "Chapter 1: Introduction to Cost Accounting"},
						{ID: "cma2_ch2", Name: "Chapter 2: Material Costs"},
					},
				},
			},
		},
		"Final": {
			Group1: {
				{
					ID:   "ca_final_g1_p1",
					Name: "Financial Reporting",
					Chapters: []Chapter{
						{ID: "fr_ch1", Name: "Chapter 1: Framework for Preparation of Financial Statements"},
						{ID: "fr_ch2", Name: "Chapter 2: Accounting Standards"},
					},
				},
			},
			Group2: {
				{
					ID:   "ca_final_g2_p1",
					Name: "Strategic Financial Management",
					Chapters: []Chapter{
						{ID: "sfm_ch1", Name: "Chapter 1: Financial Policy and Corporate Strategy"},
						{ID: "sfm_ch2", Name: "Chapter 2: Risk Management"},
					},
				},
			},
		},
	},
	CourseCMA: {
		"Foundation": {
			Group1: {
				{
					ID:   "cma_found_g1_p1",
					Name: "Fundamentals of Economics and Management",
					Chapters: []Chapter{
						{ID: "fem_ch1", Name: "Chapter 1: Introduction to Economics"},
						{ID: "fem_ch2", Name: "Chapter 2: Basic Concepts of Management"},
					},
				},
			},
			Group2: {
				{
					ID:   "cma_found_g2_p1",
					Name: "Fundamentals of Accounting",
					Chapters: []Chapter{
						{ID: "fa_ch1", Name: "Chapter 1: Introduction to Accounting"},
						{ID: "fa_ch2", Name: "Chapter 2: Accounting Cycle"},
					},
				},
			},
		},
		"Intermediate": {
			Group1: {
				{
					ID:   "cma_inter_g1_p1",
					Name: "Financial Accounting",
					Chapters: []Chapter{
						{ID: "fa2_ch1", Name: "Chapter 1: Accounting Standards"},
						{ID: "fa2_ch2", Name: "Chapter 2: Financial Statements"},
					},
				},
			},
			Group2: {
				{
					ID:   "cma_inter_g2_p1",
					Name: "Cost Accounting",
					Chapters: []Chapter{
						{ID: "ca_ch1", Name: "Chapter 1: Cost Concepts"},
						{ID: "ca_ch2", Name: "Chapter 2: Material Costing"},
					},
				},
			},
		},
		"Final": {
			Group1: {
				{
					ID:   "cma_final_g1_p1",
					Name: "Corporate Laws and Compliance",
					Chapters: []Chapter{
						{ID: "clc_ch1", Name: "Chapter 1: Company Law"},
						{ID: "clc_ch2", Name: "Chapter 2: Corporate Governance"},
					},
				},
			},
			Group2: {
				{
					ID:   "cma_final_g2_p1",
					Name: "Strategic Performance Management",
					Chapters: []Chapter{
						{ID: "spm_ch1", Name: "Chapter 1: Strategic Planning"},
						{ID: "spm_ch2", Name: "Chapter 2: Performance Measurement"},
					},
				},
			},
		},
	},
	// "Other" has no predefined papers; everything is tracked through custom
	// subjects.
	CourseOther: {
		LevelNotApplicable: {},
	},
}
