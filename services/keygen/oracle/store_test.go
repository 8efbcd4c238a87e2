package oracle

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sijms/go-ora/v2/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextparkapi/services/keygen"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

// TestNextValue_Success verifies the NEXTVAL round trip
func TestNextValue_Success(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT SEQ_NEXTPARK_MOTO.NEXTVAL FROM DUAL")).
		WillReturnRows(sqlmock.NewRows([]string{"NEXTVAL"}).AddRow(int64(42)))

	value, err := store.NextValue(context.Background(), "SEQ_NEXTPARK_MOTO")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestNextValue_MissingSequence verifies ORA-02289 maps to the recoverable error
func TestNextValue_MissingSequence(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT MISSING_SEQ.NEXTVAL FROM DUAL")).
		WillReturnError(&network.OracleError{ErrCode: 2289, ErrMsg: "ORA-02289: sequence does not exist"})

	_, err := store.NextValue(context.Background(), "MISSING_SEQ")
	assert.ErrorIs(t, err, keygen.ErrSequenceUnavailable)
}

// TestNextValue_InsufficientPrivilege verifies ORA-01031 maps to the recoverable error
func TestNextValue_InsufficientPrivilege(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT LOCKED_SEQ.NEXTVAL FROM DUAL")).
		WillReturnError(&network.OracleError{ErrCode: 1031, ErrMsg: "ORA-01031: insufficient privileges"})

	_, err := store.NextValue(context.Background(), "LOCKED_SEQ")
	assert.ErrorIs(t, err, keygen.ErrSequenceUnavailable)
}

// TestNextValue_FatalErrorPropagates verifies other database errors are not swallowed
func TestNextValue_FatalErrorPropagates(t *testing.T) {
	store, mock := newMockStore(t)

	boom := errors.New("ORA-03113: end-of-file on communication channel")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT SEQ_NEXTPARK_MOTO.NEXTVAL FROM DUAL")).
		WillReturnError(boom)

	_, err := store.NextValue(context.Background(), "SEQ_NEXTPARK_MOTO")
	require.Error(t, err)
	assert.NotErrorIs(t, err, keygen.ErrSequenceUnavailable)
}

// TestNextValue_RejectsBadIdentifier verifies injection-prone names never hit the database
func TestNextValue_RejectsBadIdentifier(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.NextValue(context.Background(), "SEQ; DROP TABLE TB_NEXTPARK_MOTO")
	assert.ErrorIs(t, err, keygen.ErrSequenceUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListSequences_PatternQuery verifies the catalog query shape and ordering
func TestListSequences_PatternQuery(t *testing.T) {
	store, mock := newMockStore(t)

	query := "SELECT SEQUENCE_NAME FROM USER_SEQUENCES WHERE SEQUENCE_NAME LIKE :1 OR SEQUENCE_NAME LIKE :2 ORDER BY SEQUENCE_NAME"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("%TB_NEXTPARK_MOTO%", "%NEXTPARK_MOTO%").
		WillReturnRows(sqlmock.NewRows([]string{"SEQUENCE_NAME"}).
			AddRow("NEXTPARK_MOTO_SEQ").
			AddRow("SEQ_NEXTPARK_MOTO"))

	names, err := store.ListSequences(context.Background(), "%TB_NEXTPARK_MOTO%", "%NEXTPARK_MOTO%")
	require.NoError(t, err)
	assert.Equal(t, []string{"NEXTPARK_MOTO_SEQ", "SEQ_NEXTPARK_MOTO"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListSequences_NoPatterns verifies the no-pattern short circuit
func TestListSequences_NoPatterns(t *testing.T) {
	store, mock := newMockStore(t)

	names, err := store.ListSequences(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestMaxKey_ReturnsMax verifies the table scan query
func TestMaxKey_ReturnsMax(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT NVL(MAX(ID_MOTO), 0) FROM TB_NEXTPARK_MOTO")).
		WillReturnRows(sqlmock.NewRows([]string{"MAX"}).AddRow(int64(17)))

	max, err := store.MaxKey(context.Background(), "TB_NEXTPARK_MOTO", "ID_MOTO")
	require.NoError(t, err)
	assert.Equal(t, int64(17), max)
}

// TestMaxKey_EmptyTable verifies NVL collapses an empty table to zero
func TestMaxKey_EmptyTable(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT NVL(MAX(ID_VAGA), 0) FROM TB_NEXTPARK_VAGA")).
		WillReturnRows(sqlmock.NewRows([]string{"MAX"}).AddRow(int64(0)))

	max, err := store.MaxKey(context.Background(), "TB_NEXTPARK_VAGA", "ID_VAGA")
	require.NoError(t, err)
	assert.Equal(t, int64(0), max)
}

// TestMaxKey_RejectsBadIdentifier verifies identifier validation on both names
func TestMaxKey_RejectsBadIdentifier(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.MaxKey(context.Background(), "TB_NEXTPARK_MOTO", "ID_MOTO; --")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
