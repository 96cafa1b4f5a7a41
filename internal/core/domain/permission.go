package domain

// Module identifies an application area for permission checks.
type Module string

const (
	ModulePayables        Module = "PAYABLES"
	ModuleReconciliations Module = "RECONCILIATIONS"
	ModuleCongregations   Module = "CONGREGATIONS"
	ModuleMembers         Module = "MEMBERS"
	ModuleEvents          Module = "EVENTS"
	ModuleNotifications   Module = "NOTIFICATIONS"
	ModuleCategories      Module = "CATEGORIES"
	ModuleUsers           Module = "USERS"
)

// ModuleAction identifies what an actor wants to do within a module.
type ModuleAction string

const (
	ActionView   ModuleAction = "VIEW"
	ActionInsert ModuleAction = "INSERT"
	ActionEdit   ModuleAction = "EDIT"
)
