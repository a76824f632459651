package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo/repo_errors"
	"gem-bid-tracker/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const bidColumns = "id, gem_bid_id, bid_number, category_name, category_id, quantity, end_date, department, status, assigned_to, assigned_user_name, due_date, submitted_doc_link, created_at, updated_at"

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func scanBid(scan func(dest ...any) error) (*entity.Bid, error) {
	var (
		bid          entity.Bid
		quantity     sql.NullInt64
		endDate      sql.NullTime
		department   sql.NullString
		assignedTo   sql.NullString
		assignedName sql.NullString
		dueDate      sql.NullTime
		docLink      sql.NullString
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := scan(&bid.Id, &bid.GemBidId, &bid.BidNumber, &bid.CategoryName, &bid.CategoryId,
		&quantity, &endDate, &department, &bid.Status,
		&assignedTo, &assignedName, &dueDate, &docLink, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if quantity.Valid {
		bid.Quantity = &quantity.Int64
	}
	if endDate.Valid {
		t := endDate.Time
		bid.EndDate = &t
	}
	if department.Valid {
		d := department.String
		bid.Department = &d
	}
	if assignedTo.Valid {
		if id, err := uuid.Parse(assignedTo.String); err == nil {
			bid.AssignedTo = &id
		}
	}
	if assignedName.Valid {
		n := assignedName.String
		bid.AssignedUserName = &n
	}
	if dueDate.Valid {
		t := dueDate.Time
		bid.DueDate = &t
	}
	if docLink.Valid {
		l := docLink.String
		bid.SubmittedDocLink = &l
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)
	bid.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &bid, nil
}

// UpsertScrapedBids inserts the scraped bids in one statement. Existing rows
// are refreshed on their scraped columns only, workflow columns
// (assigned_to, assigned_user_name, due_date, submitted_doc_link) are left
// as they are.
func (r *BidRepo) UpsertScrapedBids(ctx context.Context, bids []entity.ScrapedBid) error {
	if len(bids) == 0 {
		return nil
	}

	insert := r.SqlBuilder.
		Insert("bid").
		Columns("gem_bid_id", "bid_number", "category_name", "category_id", "quantity", "end_date", "department", "status")

	for _, b := range bids {
		insert = insert.Values(b.GemBidId, b.BidNumber, b.CategoryName, b.CategoryId, b.Quantity, b.EndDate, b.Department, b.Status)
	}

	upsertSql, args, _ := insert.
		Suffix(`on conflict (gem_bid_id) do update set
			bid_number = excluded.bid_number,
			category_name = excluded.category_name,
			category_id = excluded.category_id,
			quantity = excluded.quantity,
			end_date = excluded.end_date,
			department = excluded.department,
			status = excluded.status,
			updated_at = now()`).
		ToSql()

	_, err := r.Database.Exec(upsertSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *BidRepo) GetGemBidIdsByStatus(ctx context.Context, status string) ([]string, error) {
	getIdsSql, args, _ := r.SqlBuilder.
		Select("gem_bid_id").
		From("bid").
		Where("status = ?", status).
		ToSql()

	rows, err := r.Database.Query(getIdsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ids, err
	}

	return ids, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRow(getBidSql, args...)
	bid, err := scanBid(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetAvailableBids(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	query := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("status <> ?", common.Rejected)

	if category != "" {
		query = query.Where("category_name = ?", category)
	}

	getBidsSql, args, _ := query.
		OrderBy("end_date asc nulls last").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(getBidsSql, args)
}

func (r *BidRepo) GetAssignedBids(ctx context.Context, assignedTo string, category string) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(assignedTo)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	query := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("assigned_to = ?", uuidForm).
		Where("status <> ?", common.Rejected)

	if category != "" {
		query = query.Where("category_name = ?", category)
	}

	getBidsSql, args, _ := query.
		OrderBy("due_date asc nulls last").
		ToSql()

	return r.queryBids(getBidsSql, args)
}

func (r *BidRepo) queryBids(getBidsSql string, args []any) ([]entity.Bid, error) {
	rows, err := r.Database.Query(getBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows.Scan)
		if err != nil {
			return bids, err
		}
		bids = append(bids, *bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) AssignBid(ctx context.Context, input *entity.AssignBidInput) error {
	bidUuid, err := uuid.Parse(input.BidId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	assigneeUuid, err := uuid.Parse(input.AssignedTo)
	if err != nil {
		return err
	}

	assignSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.Considered).
		Set("assigned_to", assigneeUuid).
		Set("assigned_user_name", input.AssignedUserName).
		Set("due_date", input.DueDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", bidUuid).
		ToSql()

	_, err = r.Database.Exec(assignSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *BidRepo) UpdateBidStatus(ctx context.Context, input *entity.UpdateBidStatusInput) error {
	bidUuid, err := uuid.Parse(input.BidId)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	update := r.SqlBuilder.
		Update("bid").
		Set("status", input.Status).
		Set("updated_at", squirrel.Expr("now()"))

	if input.Status == common.Submitted && input.SubmittedDocLink != "" {
		update = update.Set("submitted_doc_link", input.SubmittedDocLink)
	}

	updateSql, args, _ := update.
		Where("id = ?", bidUuid).
		ToSql()

	_, err = r.Database.Exec(updateSql, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *BidRepo) GetCategories(ctx context.Context) ([]entity.Category, error) {
	getCategoriesSql, args, _ := r.SqlBuilder.
		Select("distinct category_name, category_id").
		From("bid").
		Where("status <> ?", common.Rejected).
		OrderBy("category_name asc").
		ToSql()

	rows, err := r.Database.Query(getCategoriesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.Name, &c.CategoryId); err != nil {
			return categories, err
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return categories, err
	}

	return categories, nil
}

func (r *BidRepo) CountBidsByStatus(ctx context.Context, category string) (map[string]int, error) {
	query := r.SqlBuilder.
		Select("status, count(*)").
		From("bid")

	if category != "" {
		query = query.Where("category_name = ?", category)
	}

	countSql, args, _ := query.
		GroupBy("status").
		ToSql()

	rows, err := r.Database.Query(countSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return counts, err
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return counts, err
	}

	return counts, nil
}
