package testfixtures

import (
	"sync"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/notification"
)

// RecordingNotifier captures events synchronously.
type RecordingNotifier struct {
	mu           sync.Mutex
	CheckIns     []notification.CheckInEvent
	CheckOuts    []notification.CheckOutEvent
	Leaves       []notification.LeaveStatusEvent
	Resignations []notification.ResignationStatusEvent
	Closed       bool
}

func (n *RecordingNotifier) NotifyCheckIn(e notification.CheckInEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.CheckIns = append(n.CheckIns, e)
}

func (n *RecordingNotifier) NotifyCheckOut(e notification.CheckOutEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.CheckOuts = append(n.CheckOuts, e)
}

func (n *RecordingNotifier) NotifyLeaveStatus(e notification.LeaveStatusEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Leaves = append(n.Leaves, e)
}

func (n *RecordingNotifier) NotifyResignationStatus(e notification.ResignationStatusEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Resignations = append(n.Resignations, e)
}

func (n *RecordingNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Closed = true
}
