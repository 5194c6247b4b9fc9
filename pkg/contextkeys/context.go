package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or transaction) for
	// the current request.
	DBContextKey ContextKey = "db"
)
