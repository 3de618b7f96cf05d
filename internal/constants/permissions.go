package constants

const (
	ViewPortfolio   = "view_portfolio"
	ViewStatements  = "view_statements"
	ManageProjects  = "manage_projects"
	ManageInvestors = "manage_investors"
	ManageStakes    = "manage_stakes"
	ProcessPayouts  = "process_payouts"
	UploadDocuments = "upload_documents"
	ManageAdmins    = "manage_admins"
)
