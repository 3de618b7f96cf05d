package constants

import pkgconst "wellcrest-backend/internal/pkg/constants"

// PermissionRoles maps each permission to the roles allowed to perform it.
var PermissionRoles = map[string][]string{
	ViewPortfolio:   {pkgconst.Investor, pkgconst.Admin, pkgconst.Superadmin},
	ViewStatements:  {pkgconst.Investor, pkgconst.Admin, pkgconst.Superadmin},
	ManageProjects:  {pkgconst.Admin, pkgconst.Superadmin},
	ManageInvestors: {pkgconst.Admin, pkgconst.Superadmin},
	ManageStakes:    {pkgconst.Admin, pkgconst.Superadmin},
	ProcessPayouts:  {pkgconst.Admin, pkgconst.Superadmin},
	UploadDocuments: {pkgconst.Admin, pkgconst.Superadmin},
	ManageAdmins:    {pkgconst.Superadmin},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
