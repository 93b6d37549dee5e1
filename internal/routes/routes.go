package routes

const (
	// Health
	Health = "/health"

	// Public listing endpoints
	Properties   = "/properties"
	PropertyByID = "/properties/{id}"

	// Manager-only
	PropertyCreate    = "/properties"
	ManagerProperties = "/managers/{cognitoId}/properties"

	// Manager or tenant
	PropertyLeases = "/properties/{id}/leases"
	Leases         = "/leases"
	LeasePayments  = "/leases/{id}/payments"

	// Tenant endpoints
	Tenants          = "/tenants"
	TenantByID       = "/tenants/{cognitoId}"
	TenantResidences = "/tenants/{cognitoId}/current-residences"
	TenantFavorite   = "/tenants/{cognitoId}/favorites/{propertyId}"

	// Manager endpoints
	Managers    = "/managers"
	ManagerByID = "/managers/{cognitoId}"
)
