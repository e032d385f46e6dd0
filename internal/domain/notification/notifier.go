package notification

// Notifier delivers events asynchronously. Calls never block on delivery and
// failures are logged, not returned.
type Notifier interface {
	NotifyCheckIn(e CheckInEvent)
	NotifyCheckOut(e CheckOutEvent)
	NotifyLeaveStatus(e LeaveStatusEvent)
	NotifyResignationStatus(e ResignationStatusEvent)
	// Close waits for in-flight deliveries.
	Close()
}
