package handlers

// Bundle groups the handlers the route registration needs.
type Bundle struct {
	Requests    *RequestHandler
	Marketplace *MarketplaceHandler
	Employees   *EmployeeHandler
	Admin       *AdminHandler
	Contact     *ContactHandler
	Health      *HealthHandler
}
