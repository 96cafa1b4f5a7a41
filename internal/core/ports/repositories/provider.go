package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	PayableRepo        PayableRepositoryFacade
	ReconciliationRepo ReconciliationRepositoryFacade
	UserRepo           UserRepositoryFacade
	CongregationRepo   CongregationRepositoryFacade
	MemberRepo         MemberRepositoryFacade
	EventRepo          EventRepositoryFacade
	NotificationRepo   NotificationRepositoryFacade
	CategoryRepo       CategoryRepositoryFacade
}
