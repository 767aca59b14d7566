package models

// Capacity and credential constants
const (
	// MaxCandidates bounds the registry; the voter UI renders at most 32 entries.
	MaxCandidates = 32

	// HashAlgorithm identifies the digest stored in the credential file.
	HashAlgorithm = "sha256"
)

// Default file names, relative to the configured data directory
const (
	DefaultStateFile      = "voting_data.json"
	DefaultCredentialFile = "admin_password.json"
	DefaultAuditFile      = "voting_log.txt"
)

// Domain types

type Candidate struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	VoteCount int    `json:"vote_count"`
}

// PersistedState is the wholesale content of the state file. It round-trips
// exactly through store.SaveState / store.LoadState.
type PersistedState struct {
	Candidates []Candidate `json:"candidates"`
	VotingOpen bool        `json:"voting_open"`
	TotalVotes int         `json:"total_votes"`
}

// AdminCredential is the wholesale content of the credential file. The
// password is never stored in clear text.
type AdminCredential struct {
	PasswordHashHex string `json:"password_hash"`
	Algorithm       string `json:"algorithm"`
}

// Result types

type CandidateResult struct {
	Candidate
	Percent float64 `json:"percent"`
	Rank    int     `json:"rank"` // 1-indexed, ties keep registration order
}

type Results struct {
	TotalVotes int               `json:"total_votes"`
	Rows       []CandidateResult `json:"rows"`
}
