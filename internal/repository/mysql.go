package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-california/internal/model"
)

// MySQLUnitOfWork opens sessions backed by one *sql.Tx each.
//
// Expected schema:
//
//	users  (email VARCHAR PRIMARY KEY, name VARCHAR, password_hash VARCHAR,
//	        is_admin BOOL, refresh_token TEXT NULL)
//	rooms  (number INT PRIMARY KEY, capacity INT, price DECIMAL(10,2))
//	orders (identity INT PRIMARY KEY, room_number INT NULL REFERENCES rooms(number),
//	        arrival DATE, departure DATE)
type MySQLUnitOfWork struct {
	db *sql.DB
}

// NewMySQLUnitOfWork binds a unit of work to a connection pool.
func NewMySQLUnitOfWork(db *sql.DB) *MySQLUnitOfWork {
	return &MySQLUnitOfWork{db: db}
}

// Begin starts a transaction and returns a session bound to it.
func (u *MySQLUnitOfWork) Begin(ctx context.Context) (Session, error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &mysqlSession{tx: tx}, nil
}

type mysqlSession struct {
	tx *sql.Tx
}

func (s *mysqlSession) Users() UserRepository   { return &mysqlUserRepo{tx: s.tx} }
func (s *mysqlSession) Rooms() RoomRepository   { return &mysqlRoomRepo{tx: s.tx} }
func (s *mysqlSession) Orders() OrderRepository { return &mysqlOrderRepo{tx: s.tx} }

func (s *mysqlSession) Commit() error { return s.tx.Commit() }

// Rollback discards uncommitted changes. After Commit the transaction is
// already done; that case is not an error so the session can always be
// rolled back in a defer.
func (s *mysqlSession) Rollback() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

type mysqlUserRepo struct {
	tx *sql.Tx
}

func (r *mysqlUserRepo) All(ctx context.Context) ([]model.User, error) {
	rows, err := r.tx.QueryContext(ctx,
		"SELECT email, name, password_hash, is_admin, refresh_token FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var token sql.NullString
		if err := rows.Scan(&u.Email, &u.Name, &u.Password, &u.IsAdmin, &token); err != nil {
			return nil, err
		}
		if token.Valid && token.String != "" {
			u.Token = &model.RefreshToken{Value: token.String}
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *mysqlUserRepo) Save(ctx context.Context, u model.User) error {
	var token sql.NullString
	if u.Token != nil {
		token = sql.NullString{String: u.Token.Value, Valid: true}
	}
	_, err := r.tx.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, is_admin, refresh_token)
		 VALUES (?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE name=VALUES(name), password_hash=VALUES(password_hash),
		 is_admin=VALUES(is_admin), refresh_token=VALUES(refresh_token)`,
		u.Email, u.Name, u.Password, u.IsAdmin, token)
	return err
}

func (r *mysqlUserRepo) Delete(ctx context.Context, email string) error {
	_, err := r.tx.ExecContext(ctx, "DELETE FROM users WHERE email=?", email)
	return err
}

type mysqlRoomRepo struct {
	tx *sql.Tx
}

// All loads every room and attaches its orders, ordered by identity so that
// booking history keeps insertion order.
func (r *mysqlRoomRepo) All(ctx context.Context) ([]model.Room, error) {
	rows, err := r.tx.QueryContext(ctx, "SELECT number, capacity, price FROM rooms")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byNumber := map[int]int{} // room number -> index in rooms
	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.Number, &room.Capacity, &room.Price); err != nil {
			return nil, err
		}
		byNumber[room.Number] = len(rooms)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orders, err := scanOrders(ctx, r.tx, "WHERE room_number IS NOT NULL")
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if i, ok := byNumber[o.RoomNumber]; ok {
			rooms[i].Orders = append(rooms[i].Orders, o)
		}
	}
	return rooms, nil
}

func (r *mysqlRoomRepo) Save(ctx context.Context, room model.Room) error {
	_, err := r.tx.ExecContext(ctx,
		`INSERT INTO rooms (number, capacity, price) VALUES (?,?,?)
		 ON DUPLICATE KEY UPDATE capacity=VALUES(capacity), price=VALUES(price)`,
		room.Number, room.Capacity, room.Price)
	return err
}

type mysqlOrderRepo struct {
	tx *sql.Tx
}

func (r *mysqlOrderRepo) All(ctx context.Context) ([]model.Order, error) {
	return scanOrders(ctx, r.tx, "")
}

func (r *mysqlOrderRepo) Save(ctx context.Context, o model.Order) error {
	var roomNumber sql.NullInt64
	if o.RoomNumber > 0 {
		roomNumber = sql.NullInt64{Int64: int64(o.RoomNumber), Valid: true}
	}
	_, err := r.tx.ExecContext(ctx,
		`INSERT INTO orders (identity, room_number, arrival, departure) VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE room_number=VALUES(room_number)`,
		o.Identity, roomNumber, o.Arrival().Date, o.Departure().Date)
	return err
}

func (r *mysqlOrderRepo) Delete(ctx context.Context, identity int) error {
	_, err := r.tx.ExecContext(ctx, "DELETE FROM orders WHERE identity=?", identity)
	return err
}

func scanOrders(ctx context.Context, tx *sql.Tx, where string) ([]model.Order, error) {
	q := "SELECT identity, room_number, arrival, departure FROM orders " + where + " ORDER BY identity"
	rows, err := tx.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var (
			identity   int
			roomNumber sql.NullInt64
			arrival    time.Time
			departure  time.Time
		)
		if err := rows.Scan(&identity, &roomNumber, &arrival, &departure); err != nil {
			return nil, err
		}
		o := model.Order{
			Identity: identity,
			Dates: [2]model.BookingDate{
				model.NewBookingDate(arrival, model.StatusArrival),
				model.NewBookingDate(departure, model.StatusDeparture),
			},
		}
		if roomNumber.Valid {
			o.RoomNumber = int(roomNumber.Int64)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
