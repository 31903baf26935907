package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	UserInfoCtx     ContextKey = "userInfo"
	LocationCtx     ContextKey = "location"
	ShiftRequestCtx ContextKey = "shiftRequest"
	CVCtx           ContextKey = "cv"
	ChatCtx         ContextKey = "chat"
)
