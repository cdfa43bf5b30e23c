package apierrors

const (
	MsgFailListTasks      = "errorListTasks"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgParentNotFound     = "parentTaskNotFound"
	MsgParentNotRoot      = "parentTaskNotRoot"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailMoveTask       = "failMoveTask"
	MsgFailReorderTasks   = "failReorderTasks"
	MsgInvalidWeek        = "invalidWeek"
	MsgTemplateImmutable  = "templateImmutable"
	MsgFailListWeeks      = "failListWeeks"
	MsgFailCreateWeek     = "failCreateWeek"
	MsgFailDeleteWeek     = "failDeleteWeek"
	MsgFailPropagate      = "failPropagateTemplate"
	MsgFailSettings       = "failSettings"
	MsgInvalidSettings    = "invalidSettingsPayload"
	MsgFailCalendar       = "failCalendarEvents"
	MsgInvalidCalendar    = "invalidCalendarPayload"
	MsgFailReport         = "failWeekReport"
	MsgFailSampleData     = "failSampleData"
)
