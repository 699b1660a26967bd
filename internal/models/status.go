package models

// Status mitra (nilai yang tersimpan di database)
const (
	MitraStatusPending   = "pending"
	MitraStatusVerified  = "terverifikasi"
	MitraStatusRejected  = "ditolak"
	MitraStatusSuspended = "suspended"
)

// Status tagihan
const (
	TagihanStatusPending    = "pending"
	TagihanStatusProcessing = "processing"
	TagihanStatusCompleted  = "completed"
	TagihanStatusCancelled  = "cancelled"
)

// Status top up
const (
	TopUpStatusPending  = "pending"
	TopUpStatusApproved = "approved"
	TopUpStatusRejected = "rejected"
)

// Action adalah satu tombol aksi: nama aksi & status tujuannya
type Action struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

var mitraTransitions = map[string][]Action{
	MitraStatusPending: {
		{Name: "verify", Target: MitraStatusVerified},
		{Name: "reject", Target: MitraStatusRejected},
	},
	MitraStatusVerified: {
		{Name: "suspend", Target: MitraStatusSuspended},
	},
	MitraStatusSuspended: {
		{Name: "reactivate", Target: MitraStatusVerified},
	},
}

var tagihanTransitions = map[string][]Action{
	TagihanStatusPending: {
		{Name: "process", Target: TagihanStatusProcessing},
		{Name: "cancel", Target: TagihanStatusCancelled},
	},
	TagihanStatusProcessing: {
		{Name: "complete", Target: TagihanStatusCompleted},
		{Name: "cancel", Target: TagihanStatusCancelled},
	},
}

var topUpTransitions = map[string][]Action{
	TopUpStatusPending: {
		{Name: "approve", Target: TopUpStatusApproved},
		{Name: "reject", Target: TopUpStatusRejected},
	},
}

// MitraActions mengembalikan aksi yang valid dari status mitra sekarang.
// Status terminal (atau tidak dikenal) mengembalikan slice kosong.
func MitraActions(status string) []Action { return actionsFrom(mitraTransitions, status) }

func TagihanActions(status string) []Action { return actionsFrom(tagihanTransitions, status) }

func TopUpActions(status string) []Action { return actionsFrom(topUpTransitions, status) }

func CanTransitionMitra(from, to string) bool { return canTransition(mitraTransitions, from, to) }

func CanTransitionTagihan(from, to string) bool { return canTransition(tagihanTransitions, from, to) }

func CanTransitionTopUp(from, to string) bool { return canTransition(topUpTransitions, from, to) }

func actionsFrom(table map[string][]Action, status string) []Action {
	out := make([]Action, len(table[status]))
	copy(out, table[status])
	return out
}

func canTransition(table map[string][]Action, from, to string) bool {
	for _, a := range table[from] {
		if a.Target == to {
			return true
		}
	}
	return false
}
