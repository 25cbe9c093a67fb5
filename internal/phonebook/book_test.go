package phonebook

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/mock"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errRemote = errors.New("connection refused")

// newTestBook returns a book already loaded with persons.
func newTestBook(t *testing.T, persons ...models.Person) (*Book, *mock.MockDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := mock.NewMockDirectory(ctrl)
	book := NewBook(dir, logger.Nop())

	if len(persons) > 0 {
		dir.EXPECT().List(gomock.Any()).Return(persons, nil)
		_, notified := book.Apply(book.Load()(context.Background()))
		require.False(t, notified)
	}

	return book, dir
}

func fill(b *Book, name, number string) {
	b.SetName(name)
	b.SetNumber(number)
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestBook_Load_ReplacesRecordSet(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	dir.EXPECT().List(gomock.Any()).Return([]models.Person{
		{ID: 2, Name: "Bob", Number: "222"},
		{ID: 3, Name: "Cid", Number: "333"},
	}, nil)

	_, notified := book.Apply(book.Load()(context.Background()))
	assert.False(t, notified)
	assert.Equal(t, []models.Person{
		{ID: 2, Name: "Bob", Number: "222"},
		{ID: 3, Name: "Cid", Number: "333"},
	}, book.Snapshot().Records)
}

func TestBook_Load_CollapsesDuplicateIDs(t *testing.T) {
	book, _ := newTestBook(t,
		models.Person{ID: 1, Name: "Ann", Number: "111"},
		models.Person{ID: 1, Name: "Ann again", Number: "999"},
	)

	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "111"}}, book.Snapshot().Records)
}

func TestBook_Load_FailureKeepsStateAndShowsError(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	dir.EXPECT().List(gomock.Any()).Return(nil, errRemote)

	e, notified := book.Apply(book.Load()(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotError, e.Slot)
	assert.Equal(t, ErrorTTL, e.After)

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "111"}}, snap.Records)
	assert.Equal(t, "Failed to load phonebook", snap.Error)
	assert.Empty(t, snap.Info)
}

// ── Add: create path ─────────────────────────────────────────────────────────

func TestBook_Submit_Create_Success(t *testing.T) {
	book, dir := newTestBook(t)
	fill(book, "Ann", "123")

	call, confirm := book.Submit()
	require.Nil(t, confirm)
	require.NotNil(t, call)

	dir.EXPECT().
		Create(gomock.Any(), models.PersonInput{Name: "Ann", Number: "123"}).
		Return(models.Person{ID: 7, Name: "Ann", Number: "123"}, nil)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotInfo, e.Slot)
	assert.Equal(t, InfoTTL, e.After)

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 7, Name: "Ann", Number: "123"}}, snap.Records)
	assert.Equal(t, Form{}, snap.Form)
	assert.Equal(t, "Added Ann", snap.Info)
	assert.Empty(t, snap.Error)
}

func TestBook_Submit_Create_AppendsInOrder(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "Bob", "222")

	call, _ := book.Submit()
	dir.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Person{ID: 2, Name: "Bob", Number: "222"}, nil)
	book.Apply(call(context.Background()))

	assert.Equal(t, []models.Person{
		{ID: 1, Name: "Ann", Number: "111"},
		{ID: 2, Name: "Bob", Number: "222"},
	}, book.Snapshot().Records)
}

func TestBook_Submit_Create_ExistingIDIsReplacedNotDuplicated(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 4, Name: "Old", Number: "000"})
	fill(book, "Ann", "123")

	call, _ := book.Submit()
	dir.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Person{ID: 4, Name: "Ann", Number: "123"}, nil)
	book.Apply(call(context.Background()))

	assert.Equal(t, []models.Person{{ID: 4, Name: "Ann", Number: "123"}}, book.Snapshot().Records)
}

func TestBook_Submit_Create_FailureKeepsForm(t *testing.T) {
	book, dir := newTestBook(t)
	fill(book, "Ann", "123")

	call, _ := book.Submit()
	dir.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Person{}, errRemote)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotError, e.Slot)

	snap := book.Snapshot()
	assert.Empty(t, snap.Records)
	assert.Equal(t, Form{Name: "Ann", Number: "123"}, snap.Form)
	assert.Equal(t, "Failed to add Ann", snap.Error)
	assert.Empty(t, snap.Info)
}

// ── Add: update path ─────────────────────────────────────────────────────────

func TestBook_Submit_Update_AsksForConfirmation(t *testing.T) {
	book, _ := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "ann", "222")

	call, confirm := book.Submit()
	assert.Nil(t, call)
	require.NotNil(t, confirm)
	assert.Equal(t, "ann is already added to phonebook, replace the old number with a new one?", confirm.Prompt)
}

func TestBook_Submit_Update_Confirmed(t *testing.T) {
	book, dir := newTestBook(t,
		models.Person{ID: 1, Name: "Ann", Number: "111"},
		models.Person{ID: 2, Name: "Bob", Number: "999"},
	)
	fill(book, "Ann", "222")

	_, confirm := book.Submit()
	require.NotNil(t, confirm)

	call := book.Decide(confirm, true)
	require.NotNil(t, call)

	dir.EXPECT().
		Update(gomock.Any(), int64(1), models.Person{ID: 1, Name: "Ann", Number: "222"}).
		Return(models.Person{ID: 1, Name: "Ann", Number: "222"}, nil)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotInfo, e.Slot)

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{
		{ID: 1, Name: "Ann", Number: "222"},
		{ID: 2, Name: "Bob", Number: "999"},
	}, snap.Records)
	assert.Equal(t, "Updated Ann", snap.Info)
	// the form is only cleared after a create
	assert.Equal(t, Form{Name: "Ann", Number: "222"}, snap.Form)
}

func TestBook_Submit_Update_UsesTypedNameCasing(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "ANN", "222")

	_, confirm := book.Submit()
	call := book.Decide(confirm, true)

	dir.EXPECT().
		Update(gomock.Any(), int64(1), models.Person{ID: 1, Name: "ANN", Number: "222"}).
		Return(models.Person{ID: 1, Name: "ANN", Number: "222"}, nil)
	book.Apply(call(context.Background()))

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 1, Name: "ANN", Number: "222"}}, snap.Records)
	assert.Equal(t, "Updated ANN", snap.Info)
}

func TestBook_Submit_TrimsBeforeLookup(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "  Ann ", " 222 ")

	call, confirm := book.Submit()
	assert.Nil(t, call)
	require.NotNil(t, confirm)
	assert.Equal(t, "Ann is already added to phonebook, replace the old number with a new one?", confirm.Prompt)

	dir.EXPECT().
		Update(gomock.Any(), int64(1), models.Person{ID: 1, Name: "Ann", Number: "222"}).
		Return(models.Person{ID: 1, Name: "Ann", Number: "222"}, nil)
	book.Apply(book.Decide(confirm, true)(context.Background()))

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "222"}}, snap.Records)
	assert.Equal(t, "Updated Ann", snap.Info)
}

func TestBook_Submit_Create_SendsTrimmedInput(t *testing.T) {
	book, dir := newTestBook(t)
	fill(book, " Bob\t", " 333 ")

	call, confirm := book.Submit()
	require.Nil(t, confirm)

	dir.EXPECT().
		Create(gomock.Any(), models.PersonInput{Name: "Bob", Number: "333"}).
		Return(models.Person{ID: 3, Name: "Bob", Number: "333"}, nil)
	book.Apply(call(context.Background()))

	assert.Equal(t, "Added Bob", book.Snapshot().Info)
}

func TestBook_Submit_Update_Declined(t *testing.T) {
	book, _ := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "Ann", "222")
	before := book.Snapshot()

	_, confirm := book.Submit()
	require.NotNil(t, confirm)

	// no Update expectation: the mock fails the test if the directory is called
	assert.Nil(t, book.Decide(confirm, false))
	assert.Equal(t, before, book.Snapshot())
	assert.Empty(t, book.Snapshot().Info)
	assert.Empty(t, book.Snapshot().Error)
}

func TestBook_Submit_Update_RecordGone(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	fill(book, "Ann", "222")

	_, confirm := book.Submit()
	call := book.Decide(confirm, true)

	dir.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(models.Person{}, errRemote)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotError, e.Slot)
	assert.Equal(t, ErrorTTL, e.After)

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "111"}}, snap.Records)
	assert.Equal(t, "Information of Ann has already been removed from server", snap.Error)
	assert.Empty(t, snap.Info)
}

func TestBook_Submit_Update_TargetsFirstDuplicate(t *testing.T) {
	book, dir := newTestBook(t,
		models.Person{ID: 1, Name: "Ann", Number: "111"},
		models.Person{ID: 2, Name: "ann", Number: "222"},
	)
	fill(book, "Ann", "333")

	_, confirm := book.Submit()
	call := book.Decide(confirm, true)

	dir.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(models.Person{ID: 1, Name: "Ann", Number: "333"}, nil)
	book.Apply(call(context.Background()))

	assert.Equal(t, []models.Person{
		{ID: 1, Name: "Ann", Number: "333"},
		{ID: 2, Name: "ann", Number: "222"},
	}, book.Snapshot().Records)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestBook_Delete_Confirmed(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	confirm := book.Delete(1, "Ann")
	require.NotNil(t, confirm)
	assert.Equal(t, "Delete Ann?", confirm.Prompt)

	call := book.Decide(confirm, true)
	require.NotNil(t, call)

	dir.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotInfo, e.Slot)

	snap := book.Snapshot()
	assert.Empty(t, snap.Records)
	assert.Equal(t, "Deleted Ann", snap.Info)
}

func TestBook_Delete_Declined(t *testing.T) {
	book, _ := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})
	before := book.Snapshot()

	assert.Nil(t, book.Decide(book.Delete(1, "Ann"), false))
	assert.Equal(t, before, book.Snapshot())
}

func TestBook_Delete_FailureKeepsRecord(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	call := book.Decide(book.Delete(1, "Ann"), true)
	dir.EXPECT().Delete(gomock.Any(), int64(1)).Return(errRemote)

	e, notified := book.Apply(call(context.Background()))
	require.True(t, notified)
	assert.Equal(t, SlotError, e.Slot)

	snap := book.Snapshot()
	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "111"}}, snap.Records)
	assert.Equal(t, "Failed to delete Ann", snap.Error)
}

// ── Ordering, notifications, snapshots ───────────────────────────────────────

func TestBook_LaterCompletionWins(t *testing.T) {
	book, dir := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	fill(book, "Ann", "222")
	_, first := book.Submit()
	firstCall := book.Decide(first, true)

	fill(book, "Ann", "333")
	_, second := book.Submit()
	secondCall := book.Decide(second, true)

	gomock.InOrder(
		dir.EXPECT().Update(gomock.Any(), int64(1), models.Person{ID: 1, Name: "Ann", Number: "333"}).
			Return(models.Person{ID: 1, Name: "Ann", Number: "333"}, nil),
		dir.EXPECT().Update(gomock.Any(), int64(1), models.Person{ID: 1, Name: "Ann", Number: "222"}).
			Return(models.Person{ID: 1, Name: "Ann", Number: "222"}, nil),
	)

	// the second request completes first
	secondOutcome := secondCall(context.Background())
	firstOutcome := firstCall(context.Background())
	book.Apply(secondOutcome)
	book.Apply(firstOutcome)

	assert.Equal(t, []models.Person{{ID: 1, Name: "Ann", Number: "222"}}, book.Snapshot().Records)
}

func TestBook_ExpireClearsOnlyCurrentMessage(t *testing.T) {
	book, dir := newTestBook(t)

	dir.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Person{ID: 1, Name: "Ann"}, nil)
	dir.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Person{ID: 2, Name: "Bob"}, nil)

	fill(book, "Ann", "1")
	call, _ := book.Submit()
	first, _ := book.Apply(call(context.Background()))

	fill(book, "Bob", "2")
	call, _ = book.Submit()
	second, _ := book.Apply(call(context.Background()))

	assert.False(t, book.Expire(first))
	assert.Equal(t, "Added Bob", book.Snapshot().Info)

	assert.True(t, book.Expire(second))
	assert.Empty(t, book.Snapshot().Info)
}

func TestBook_ClearNotification(t *testing.T) {
	book, dir := newTestBook(t)
	dir.EXPECT().List(gomock.Any()).Return(nil, errRemote)
	book.Apply(book.Load()(context.Background()))
	require.NotEmpty(t, book.Snapshot().Error)

	book.ClearNotification(SlotError)
	assert.Empty(t, book.Snapshot().Error)
}

func TestBook_SnapshotVisibleFollowsSearch(t *testing.T) {
	book, _ := newTestBook(t,
		models.Person{ID: 1, Name: "Arto Hellas", Number: "1"},
		models.Person{ID: 2, Name: "Ada Lovelace", Number: "2"},
	)

	book.SetSearch("LOVE")
	snap := book.Snapshot()
	assert.Equal(t, "LOVE", snap.Search)
	assert.Len(t, snap.Records, 2)
	assert.Equal(t, []models.Person{{ID: 2, Name: "Ada Lovelace", Number: "2"}}, snap.Visible)
}

func TestBook_SnapshotIsACopy(t *testing.T) {
	book, _ := newTestBook(t, models.Person{ID: 1, Name: "Ann", Number: "111"})

	snap := book.Snapshot()
	snap.Records[0].Number = "changed"
	snap.Visible[0].Number = "changed"

	assert.Equal(t, "111", book.Snapshot().Records[0].Number)
}

func TestBook_ApplyNil(t *testing.T) {
	book, _ := newTestBook(t)
	_, notified := book.Apply(nil)
	assert.False(t, notified)
	assert.Nil(t, book.Decide(nil, true))
}
