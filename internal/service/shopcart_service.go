package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcart/internal/model"
	"github.com/RoyceAzure/lab/shopcart/internal/util/pgutil"
	er "github.com/RoyceAzure/lab/shopcart/internal/util/rj_error"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type IShopcartService interface {
	AddProduct(ctx context.Context, arg *model.UpsertShopcartModel) (*model.ShopcartModel, error)
	GetProduct(ctx context.Context, userID int64, productID int64) (*model.ShopcartModel, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ShopcartModel, error)
	ListGroupedByUser(ctx context.Context) ([]model.UserShopcartModel, error)
	CartTotal(ctx context.Context, userID int64) (*model.CartTotalModel, error)
	UsersWithTotalAtLeast(ctx context.Context, amount decimal.Decimal) ([]int64, error)
	UpdateProduct(ctx context.Context, arg *model.UpdateShopcartModel) (*model.ShopcartModel, error)
	DeleteProduct(ctx context.Context, userID int64, productID int64) error
	DeleteUserShopcart(ctx context.Context, userID int64) error
	Reset(ctx context.Context) error
}

type ShopcartService struct {
	dbDao db.IStore
}

func NewShopcartService(dbDao db.IStore) IShopcartService {
	return &ShopcartService{
		dbDao: dbDao,
	}
}

// AddProduct 將商品加入使用者購物車
// 若 (user_id, product_id) 已存在, 由資料庫以單一語句累加數量, 價格維持既有值
//
// 錯誤:
//   - er.BadRequestCode 400: 數量小於1或價格為負數
func (s *ShopcartService) AddProduct(ctx context.Context, arg *model.UpsertShopcartModel) (*model.ShopcartModel, error) {
	if arg.Quantity < 1 {
		return nil, er.New(er.BadRequestCode, "You should input number more than 0 for quantity to add a product")
	}
	if arg.Price.IsNegative() {
		return nil, er.Newf(er.BadRequestCode, "Price parameter is not valid: %s", arg.Price)
	}

	entity, err := s.dbDao.UpsertShopcart(ctx, sqlc.UpsertShopcartParams{
		UserID:    arg.UserID,
		ProductID: arg.ProductID,
		Quantity:  arg.Quantity,
		Price:     pgutil.DecimalToPgNumericV5(arg.Price),
	})
	if err != nil {
		return nil, err
	}

	return convertRepoShopcartToModel(&entity), nil
}

// GetProduct 取得使用者購物車內的單一商品
//
// 錯誤:
//   - er.NotFoundCode 404: 該使用者購物車內沒有此商品
func (s *ShopcartService) GetProduct(ctx context.Context, userID int64, productID int64) (*model.ShopcartModel, error) {
	entity, err := s.dbDao.GetShopcart(ctx, sqlc.GetShopcartParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.Newf(er.NotFoundCode, "User with id '%d' doesn't have product with id '%d' in the shopcart", userID, productID)
		}
		return nil, err
	}

	return convertRepoShopcartToModel(&entity), nil
}

func (s *ShopcartService) ListByUser(ctx context.Context, userID int64) ([]model.ShopcartModel, error) {
	entities, err := s.dbDao.ListShopcartsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.ShopcartModel, 0, len(entities))
	for i := range entities {
		items = append(items, *convertRepoShopcartToModel(&entities[i]))
	}
	return items, nil
}

// ListGroupedByUser 列出所有購物車內容, 依使用者分組
// 使用者與商品順序沿用底層儲存的順序, 不保證排序
func (s *ShopcartService) ListGroupedByUser(ctx context.Context) ([]model.UserShopcartModel, error) {
	users, err := s.dbDao.ListShopcartUsers(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]model.UserShopcartModel, 0, len(users))
	for _, userID := range users {
		products, err := s.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		results = append(results, model.UserShopcartModel{
			UserID:   userID,
			Products: products,
		})
	}
	return results, nil
}

// CartTotal 計算使用者購物車總金額
// total_price = sum(price * quantity), 四捨五入到小數第二位
func (s *ShopcartService) CartTotal(ctx context.Context, userID int64) (*model.CartTotalModel, error) {
	products, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt32(p.Quantity)))
	}

	return &model.CartTotalModel{
		Products:   products,
		TotalPrice: total.Round(2),
	}, nil
}

// UsersWithTotalAtLeast 回傳購物車總金額大於等於 amount 的使用者清單, 邊界值包含在內
func (s *ShopcartService) UsersWithTotalAtLeast(ctx context.Context, amount decimal.Decimal) ([]int64, error) {
	users, err := s.dbDao.ListUsersWithTotalAtLeast(ctx, pgutil.DecimalToPgNumericV5(amount))
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProduct 覆寫購物車內商品的數量與價格
//
// 錯誤:
//   - er.BadRequestCode 400: 數量小於1或價格為負數
//   - er.NotFoundCode 404: 該使用者購物車內沒有此商品
func (s *ShopcartService) UpdateProduct(ctx context.Context, arg *model.UpdateShopcartModel) (*model.ShopcartModel, error) {
	if arg.Quantity < 1 {
		return nil, er.New(er.BadRequestCode, "You should input number more than 0 for quantity to add a product")
	}
	if arg.Price.IsNegative() {
		return nil, er.Newf(er.BadRequestCode, "Price parameter is not valid: %s", arg.Price)
	}

	entity, err := s.dbDao.UpdateShopcart(ctx, sqlc.UpdateShopcartParams{
		UserID:    arg.UserID,
		ProductID: arg.ProductID,
		Quantity:  arg.Quantity,
		Price:     pgutil.DecimalToPgNumericV5(arg.Price),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.Newf(er.NotFoundCode, "User with id '%d' doesn't have product with id '%d' in the shopcart", arg.UserID, arg.ProductID)
		}
		return nil, err
	}

	return convertRepoShopcartToModel(&entity), nil
}

// DeleteProduct 刪除購物車內單一商品, 商品不存在視為成功
func (s *ShopcartService) DeleteProduct(ctx context.Context, userID int64, productID int64) error {
	return s.dbDao.DeleteShopcart(ctx, sqlc.DeleteShopcartParams{
		UserID:    userID,
		ProductID: productID,
	})
}

// DeleteUserShopcart 刪除使用者的全部購物車內容, 使用者不存在視為成功
func (s *ShopcartService) DeleteUserShopcart(ctx context.Context, userID int64) error {
	return s.dbDao.DeleteShopcartsByUser(ctx, userID)
}

// Reset 清空整個購物車資料表, 測試與管理用途
func (s *ShopcartService) Reset(ctx context.Context) error {
	return s.dbDao.DeleteAllShopcarts(ctx)
}

// 將 repository 模型轉換為服務層模型
func convertRepoShopcartToModel(e *sqlc.Shopcart) *model.ShopcartModel {
	return &model.ShopcartModel{
		UserID:    e.UserID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		Price:     pgutil.PgNumericToDecimalV5(e.Price),
	}
}
