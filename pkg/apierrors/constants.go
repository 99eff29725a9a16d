package apierrors

const (
	MsgFailListTasks      = "errorListTasks"
	MsgTitleRequired      = "titleRequired"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidPriority    = "invalidPriority"
	MsgInvalidDueDate     = "invalidDueDate"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
