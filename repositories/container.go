package repositories

type Repos struct {
	Request    RequestRepo
	Assignment AssignmentRepo
	Admin      AdminRepo
	Change     ChangeRepo
	Audit      AuditRepo
	Policy     PolicyRepo
	Catalog    CatalogRepo
}

func New() *Repos {
	return &Repos{
		Request:    &DBRequestRepo{},
		Assignment: &DBAssignmentRepo{},
		Admin:      &DBAdminRepo{},
		Change:     &DBChangeRepo{},
		Audit:      &DBAuditRepo{},
		Policy:     &DBPolicyRepo{},
		Catalog:    &DBCatalogRepo{},
	}
}
