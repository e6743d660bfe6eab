package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// FieldSeparator joins the columns of one account line.
	FieldSeparator = ", "
	// NullAnchor marks an absent anchor.
	NullAnchor = "null"
	// TimestampLayout is UTC with a fixed nanosecond fraction so equal
	// instants always encode to equal text.
	TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

	legacyDateLayout = "2006-01-02"
	fieldCount       = 8
)

var (
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrPersistence     = errors.New("snapshot persistence failed")
	ErrUnencodable     = errors.New("field cannot be encoded")
)

// CorruptSnapshotError locates a decode failure. Line is 1-based.
type CorruptSnapshotError struct {
	Line int
	Err  error
}

func (e *CorruptSnapshotError) Error() string {
	return fmt.Sprintf("corrupt snapshot at line %d: %v", e.Line, e.Err)
}

func (e *CorruptSnapshotError) Unwrap() error {
	return e.Err
}

func (e *CorruptSnapshotError) Is(target error) bool {
	return target == ErrCorruptSnapshot
}

func corrupt(line int, format string, args ...interface{}) error {
	return &CorruptSnapshotError{Line: line, Err: fmt.Errorf(format, args...)}
}

// FormatTimestamp renders t in UTC with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads TimestampLayout or any RFC 3339 instant, and bare
// dates as midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(legacyDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t.UTC(), nil
}

func formatAnchor(t *time.Time) string {
	if t == nil {
		return NullAnchor
	}
	return FormatTimestamp(*t)
}

func parseAnchor(s string) (*time.Time, error) {
	if s == NullAnchor {
		return nil, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", field, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative %s %s", field, s)
	}
	return d, nil
}

func checkEncodable(id int64, field, value string) error {
	if strings.Contains(value, FieldSeparator) || strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("account %d %s: %w", id, field, ErrUnencodable)
	}
	return nil
}

// Encode writes the snapshot: the account count, the next id, then one line
// per account in table order.
func Encode(w io.Writer, snapshot models.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, len(snapshot.Accounts))
	fmt.Fprintln(bw, snapshot.NextID)

	for _, a := range snapshot.Accounts {
		if err := checkEncodable(a.ID, "name", a.Name); err != nil {
			return err
		}
		if err := checkEncodable(a.ID, "secret", a.Secret); err != nil {
			return err
		}

		fields := []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Secret,
			a.Wallet.String(),
			a.Savings.String(),
			a.LoanBalance.String(),
			formatAnchor(a.SavingsAnchor),
			formatAnchor(a.LoanAnchor),
		}
		fmt.Fprintln(bw, strings.Join(fields, FieldSeparator))
	}

	return bw.Flush()
}

// Decode parses a snapshot and checks it as a whole: the declared count must
// match, ids must rise and stay below the counter, and every record must be
// valid. On failure the returned snapshot carries the header counter when it
// could be read, and no accounts.
func Decode(r io.Reader) (models.Snapshot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < 1 {
		return models.Snapshot{}, corrupt(1, "missing account count")
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || count < 0 {
		return models.Snapshot{}, corrupt(1, "invalid account count %q", lines[0])
	}

	if len(lines) < 2 {
		return models.Snapshot{}, corrupt(2, "missing next id")
	}
	nextID, err := strconv.ParseInt(strings.TrimSpace(lines[1]), 10, 64)
	if err != nil || nextID <= 0 {
		return models.Snapshot{}, corrupt(2, "invalid next id %q", lines[1])
	}

	header := models.Snapshot{NextID: nextID}

	body := lines[2:]
	if len(body) != count {
		return header, corrupt(len(lines)+1, "declared %d accounts, found %d", count, len(body))
	}

	accounts := make([]*models.Account, 0, count)
	var lastID int64
	for i, line := range body {
		lineNo := i + 3
		account, err := decodeAccount(line)
		if err != nil {
			return header, &CorruptSnapshotError{Line: lineNo, Err: err}
		}
		if i > 0 && account.ID <= lastID {
			return header, corrupt(lineNo, "account id %d not above previous %d", account.ID, lastID)
		}
		if account.ID >= nextID {
			return header, corrupt(lineNo, "account id %d not below next id %d", account.ID, nextID)
		}
		lastID = account.ID
		accounts = append(accounts, account)
	}

	return models.Snapshot{NextID: nextID, Accounts: accounts}, nil
}

func decodeAccount(line string) (*models.Account, error) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != fieldCount {
		return nil, fmt.Errorf("expected %d fields, found %d", fieldCount, len(parts))
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid account id %q", parts[0])
	}

	wallet, err := parseAmount("wallet", parts[3])
	if err != nil {
		return nil, err
	}
	savings, err := parseAmount("savings", parts[4])
	if err != nil {
		return nil, err
	}
	loan, err := parseAmount("loan balance", parts[5])
	if err != nil {
		return nil, err
	}

	savingsAnchor, err := parseAnchor(parts[6])
	if err != nil {
		return nil, fmt.Errorf("savings anchor: %w", err)
	}
	loanAnchor, err := parseAnchor(parts[7])
	if err != nil {
		return nil, fmt.Errorf("loan anchor: %w", err)
	}

	account := &models.Account{
		ID:            id,
		Name:          parts[1],
		Secret:        parts[2],
		Wallet:        wallet,
		Savings:       savings,
		LoanBalance:   loan,
		SavingsAnchor: savingsAnchor,
		LoanAnchor:    loanAnchor,
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("account %d: %w", id, err)
	}
	return account, nil
}
