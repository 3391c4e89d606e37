package provider

import (
	"atsconnect/pkg/domain"
	"strings"
	"time"
)

// JobFormatter shapes a requisition for a job board API.
type JobFormatter func(req domain.Requisition) map[string]any

// EmployeeFormatter shapes an employee for an HRIS API.
type EmployeeFormatter func(e domain.Employee) map[string]any

// DepartmentFormatter shapes a department for an HRIS API.
type DepartmentFormatter func(d domain.Department) map[string]any

var jobFormatters = map[domain.Provider]JobFormatter{ //nolint: gochecknoglobals
	domain.ProviderLinkedIn:     linkedInJob,
	domain.ProviderIndeed:       indeedJob,
	domain.ProviderGlassdoor:    glassdoorJob,
	domain.ProviderZipRecruiter: zipRecruiterJob,
	domain.ProviderMonster:      monsterJob,
}

var employeeFormatters = map[domain.Provider]EmployeeFormatter{ //nolint: gochecknoglobals
	domain.ProviderBambooHR: bambooEmployee,
	domain.ProviderWorkday:  workdayEmployee,
	domain.ProviderADP:      adpEmployee,
	domain.ProviderGusto:    gustoEmployee,
}

var departmentFormatters = map[domain.Provider]DepartmentFormatter{ //nolint: gochecknoglobals
	domain.ProviderWorkday: workdayDepartment,
	domain.ProviderADP:     adpDepartment,
}

// FormatJob shapes req for provider p, falling back to a generic layout.
func FormatJob(p domain.Provider, req domain.Requisition) map[string]any {
	if f, ok := jobFormatters[p]; ok {
		return f(req)
	}

	return genericJob(req)
}

// FormatEmployee shapes e for provider p, falling back to a generic layout.
func FormatEmployee(p domain.Provider, e domain.Employee) map[string]any {
	if f, ok := employeeFormatters[p]; ok {
		return f(e)
	}

	return genericEmployee(e)
}

// FormatDepartment shapes d for provider p, falling back to a generic layout.
func FormatDepartment(p domain.Provider, d domain.Department) map[string]any {
	if f, ok := departmentFormatters[p]; ok {
		return f(d)
	}

	return genericDepartment(d)
}

func genericJob(req domain.Requisition) map[string]any {
	return map[string]any{
		"externalId":     req.ID,
		"title":          req.Title,
		"description":    req.Description,
		"department":     req.Department,
		"location":       req.Location,
		"employmentType": req.EmploymentType,
		"remote":         req.Remote,
		"salary":         salary(req),
		"requirements":   nonNil(req.Requirements),
		"applyUrl":       req.ApplyURL,
	}
}

func linkedInJob(req domain.Requisition) map[string]any {
	workplace := "ON_SITE"
	if req.Remote {
		workplace = "REMOTE"
	}

	return map[string]any{
		"externalJobPostingId": req.ID,
		"title":                req.Title,
		"description":          describe(req),
		"location":             req.Location,
		"employmentStatus":     upperSnake(req.EmploymentType),
		"workplaceTypes":       []string{workplace},
		"companyApplyUrl":      req.ApplyURL,
		"listingType":          "BASIC",
	}
}

func indeedJob(req domain.Requisition) map[string]any {
	return map[string]any{
		"referenceNumber": req.ID,
		"title":           req.Title,
		"description":     describe(req),
		"location":        map[string]any{"city": req.Location, "remote": req.Remote},
		"jobTypes":        []string{req.EmploymentType},
		"salary":          salary(req),
		"applyUrl":        req.ApplyURL,
	}
}

func glassdoorJob(req domain.Requisition) map[string]any {
	return map[string]any{
		"jobReqId":    req.ID,
		"jobTitle":    req.Title,
		"description": describe(req),
		"location":    req.Location,
		"jobType":     req.EmploymentType,
		"department":  req.Department,
		"applyUrl":    req.ApplyURL,
	}
}

func zipRecruiterJob(req domain.Requisition) map[string]any {
	return map[string]any{
		"job_id":          req.ID,
		"job_title":       req.Title,
		"job_description": describe(req),
		"job_location":    req.Location,
		"employment_type": strings.ToLower(req.EmploymentType),
		"is_remote":       req.Remote,
		"salary_min":      req.SalaryMin,
		"salary_max":      req.SalaryMax,
		"apply_url":       req.ApplyURL,
	}
}

func monsterJob(req domain.Requisition) map[string]any {
	return map[string]any{
		"jobRefCode":  req.ID,
		"jobTitle":    req.Title,
		"jobBody":     describe(req),
		"jobLocation": map[string]any{"name": req.Location},
		"jobType":     req.EmploymentType,
		"salary":      salary(req),
		"applyOnline": map[string]any{"url": req.ApplyURL},
	}
}

func genericEmployee(e domain.Employee) map[string]any {
	return map[string]any{
		"externalId":   e.ID,
		"firstName":    e.FirstName,
		"lastName":     e.LastName,
		"email":        e.Email,
		"jobTitle":     e.JobTitle,
		"departmentId": e.DepartmentID,
		"managerId":    e.ManagerID,
		"location":     e.Location,
		"startDate":    date(e.StartDate),
		"status":       e.Status,
	}
}

func bambooEmployee(e domain.Employee) map[string]any {
	return map[string]any{
		"employeeNumber": e.ID,
		"firstName":      e.FirstName,
		"lastName":       e.LastName,
		"workEmail":      e.Email,
		"jobTitle":       e.JobTitle,
		"department":     e.DepartmentID,
		"supervisorId":   e.ManagerID,
		"location":       e.Location,
		"hireDate":       date(e.StartDate),
		"status":         e.Status,
	}
}

func workdayEmployee(e domain.Employee) map[string]any {
	return map[string]any{
		"workerId": e.ID,
		"personalData": map[string]any{
			"nameData": map[string]any{"firstName": e.FirstName, "lastName": e.LastName},
			"contactData": map[string]any{
				"emailAddress": e.Email,
			},
		},
		"positionData": map[string]any{
			"businessTitle":  e.JobTitle,
			"organizationId": e.DepartmentID,
			"managerId":      e.ManagerID,
			"location":       e.Location,
			"startDate":      date(e.StartDate),
		},
	}
}

func adpEmployee(e domain.Employee) map[string]any {
	return map[string]any{
		"associateOID": e.ID,
		"person": map[string]any{
			"legalName":   map[string]any{"givenName": e.FirstName, "familyName1": e.LastName},
			"businessCom": map[string]any{"emailUri": e.Email},
		},
		"workAssignment": map[string]any{
			"jobTitle":         e.JobTitle,
			"homeOrganization": e.DepartmentID,
			"reportsTo":        e.ManagerID,
			"homeWorkLocation": e.Location,
			"hireDate":         date(e.StartDate),
			"assignmentStatus": e.Status,
		},
	}
}

func gustoEmployee(e domain.Employee) map[string]any {
	return map[string]any{
		"external_id":   e.ID,
		"first_name":    e.FirstName,
		"last_name":     e.LastName,
		"email":         e.Email,
		"job_title":     e.JobTitle,
		"department_id": e.DepartmentID,
		"manager_id":    e.ManagerID,
		"work_address":  e.Location,
		"start_date":    date(e.StartDate),
	}
}

func genericDepartment(d domain.Department) map[string]any {
	return map[string]any{
		"externalId": d.ID,
		"name":       d.Name,
		"parentId":   d.ParentID,
		"managerId":  d.ManagerID,
	}
}

func workdayDepartment(d domain.Department) map[string]any {
	return map[string]any{
		"organizationId":       d.ID,
		"organizationName":     d.Name,
		"superiorOrganization": d.ParentID,
		"managerWorkerId":      d.ManagerID,
		"organizationType":     "SUPERVISORY",
	}
}

func adpDepartment(d domain.Department) map[string]any {
	return map[string]any{
		"departmentCode": map[string]any{"codeValue": d.ID, "shortName": d.Name},
		"parentDepartmentCode": map[string]any{
			"codeValue": d.ParentID,
		},
		"managerAssociateOID": d.ManagerID,
	}
}

func describe(req domain.Requisition) string {
	if len(req.Requirements) == 0 {
		return req.Description
	}

	var b strings.Builder
	b.WriteString(req.Description)
	b.WriteString("\n\nRequirements:\n")
	for _, r := range req.Requirements {
		b.WriteString("- ")
		b.WriteString(r)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func salary(req domain.Requisition) map[string]any {
	if req.SalaryMin == 0 && req.SalaryMax == 0 {
		return nil
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	return map[string]any{
		"min":      req.SalaryMin,
		"max":      req.SalaryMax,
		"currency": currency,
		"period":   "YEAR",
	}
}

func upperSnake(s string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(s))
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
