package v1

// Memo is a numbered diary entry.
type Memo struct {
	Number  int    `json:"memo_number"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Navigation holds a memo's neighbors; absent neighbors are nil.
type Navigation struct {
	Previous *Memo `json:"previous"`
	Next     *Memo `json:"next"`
	Current  *Memo `json:"current"`
}

// Stats is the diary's aggregate view.
type Stats struct {
	TotalMemos      int     `json:"total_memos"`
	OldestDate      *string `json:"oldest_date"`
	NewestDate      *string `json:"newest_date"`
	FirstMemoNumber *int    `json:"first_memo_number"`
	LastMemoNumber  *int    `json:"last_memo_number"`
}

// User is the identity behind the stored session token.
type User struct {
	Username string `json:"username"`
}
