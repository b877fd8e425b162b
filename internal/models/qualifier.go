package models

import "fmt"

// QualifierKind selects the query path of a user read.
type QualifierKind int

const (
	QualifierUsername QualifierKind = iota + 1
	QualifierUUID
	QualifierRange
)

// ReadQualifier selects which users a read returns.
type ReadQualifier struct {
	Kind    QualifierKind
	Value   string // username or UUID
	StartID int64  // inclusive, range only
	EndID   int64  // inclusive, range only
}

// ByUsername selects users by username.
func ByUsername(username string) ReadQualifier {
	return ReadQualifier{Kind: QualifierUsername, Value: username}
}

// ByUUID selects the user with the given UUID.
func ByUUID(userUUID string) ReadQualifier {
	return ReadQualifier{Kind: QualifierUUID, Value: userUUID}
}

// ByRange selects users whose id lies in [startID, endID].
func ByRange(startID, endID int64) ReadQualifier {
	return ReadQualifier{Kind: QualifierRange, StartID: startID, EndID: endID}
}

// IsString reports whether q is a plain string qualifier (username or UUID).
func (q ReadQualifier) IsString() bool {
	return q.Kind == QualifierUsername || q.Kind == QualifierUUID
}

func (q ReadQualifier) String() string {
	if q.Kind == QualifierRange {
		return fmt.Sprintf("%d..%d", q.StartID, q.EndID)
	}
	return q.Value
}
