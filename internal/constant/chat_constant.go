package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleCharacter = "character"
	ChatMessageRoleSystem    = "system"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMemory   = "memory"
)
