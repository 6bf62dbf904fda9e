package services

import "github.com/odroffice/odr-go/repositories"

type Services struct {
	Status      *StatusService
	Policy      *PolicyService
	Scheduler   *SchedulerService
	Remediation *RemediationService
	Intake      *IntakeService
	Admin       *AdminService
	Audit       *AuditService
}

func New(repos *repositories.Repos, notify Notifier) *Services {
	return &Services{
		Status:      NewStatusService(repos, notify),
		Policy:      NewPolicyService(repos),
		Scheduler:   NewSchedulerService(repos),
		Remediation: NewRemediationService(repos, notify),
		Intake:      NewIntakeService(repos, notify),
		Admin:       NewAdminService(repos),
		Audit:       NewAuditService(repos),
	}
}
