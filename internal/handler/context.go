package handler

type ContextKey string

var (
	SubCtxKey ContextKey = "sub"
	PersonCtx ContextKey = "person"
	ShiftCtx  ContextKey = "shift"
	WeekCtx   ContextKey = "week"
)
