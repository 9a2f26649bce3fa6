// Command cart is an interactive storefront client: browse the catalog,
// build a cart, and watch it persist across runs. It is the terminal
// stand-in for the browser UI.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ShopLite/internal/cart"
	"ShopLite/internal/catalog"
	"ShopLite/pkg/kit"
)

func main() {
	log := kit.NewLogger("cart", getenv("APP_ENV", "development"))
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	cat, store, err := newBackends(log)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	if err := cat.Ping(pingCtx); err != nil {
		cancel()
		log.Fatal("catalog unreachable", zap.Error(err))
	}
	cancel()

	engine := &cart.Engine{
		Catalog: cat,
		Store:   store,
		Log:     log,
	}

	sess, err := cart.NewSession(ctx, engine)
	if err != nil {
		log.Fatal("session init failed", zap.Error(err))
	}

	fmt.Printf("session %s, %d item(s) in cart\n", sess.ID, sess.ItemCount())
	fmt.Println("commands: list [category], add <id>, inc <id>, dec <id>, rm <id>, show, clear, quit")

	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		if done := run(ctx, engine, sess, sc.Text()); done {
			return
		}
	}
}

// newBackends picks the storage pair: Postgres catalog and cart when
// DATABASE_URL is set, else the seeded demo catalog with a JSON file
// cart next to the binary.
func newBackends(log *zap.Logger) (catalog.Provider, cart.Store, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, err
		}
		key := getenv("CART_KEY", "default")
		return catalog.NewPostgresStore(db), cart.NewPostgresStore(db, key, log), nil
	}
	return catalog.NewMemStore(), cart.NewFileStore(getenv("CART_FILE", "cart.json"), log), nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func run(ctx context.Context, engine *cart.Engine, sess *cart.Session, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true
	case "list":
		category := catalog.CategoryAll
		if len(args) > 0 {
			category = args[0]
		}
		list(ctx, engine, category)
	case "show":
		show(sess)
	case "clear":
		report(sess.Clear(ctx))
	case "add":
		withID(args, func(id int64) { report(sess.AddItem(ctx, id)) })
	case "inc":
		withID(args, func(id int64) { report(sess.ChangeQuantity(ctx, id, cart.Increase)) })
	case "dec":
		withID(args, func(id int64) { report(sess.ChangeQuantity(ctx, id, cart.Decrease)) })
	case "rm":
		withID(args, func(id int64) { report(sess.RemoveItem(ctx, id)) })
	default:
		fmt.Println("unknown command:", cmd)
	}
	return false
}

func withID(args []string, fn func(int64)) {
	if len(args) == 0 {
		fmt.Println("product id required")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("bad product id:", args[0])
		return
	}
	fn(id)
}

func report(err error) {
	switch err {
	case nil:
	case cart.ErrNotFound:
		fmt.Println("no such product")
	case cart.ErrInsufficientStock:
		fmt.Println("not enough stock available")
	default:
		fmt.Println("error:", err)
	}
}

func list(ctx context.Context, engine *cart.Engine, category string) {
	products, err := engine.Catalog.ListByCategory(ctx, category)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range products {
		fmt.Printf("%3d  %-22s $%8s  %-12s stock %d\n",
			p.ID, p.Name, p.Price.StringFixed(2), p.Category, p.Stock)
	}
}

func show(sess *cart.Session) {
	c := sess.Cart()
	if len(c) == 0 {
		fmt.Println("cart is empty")
		return
	}

	for _, it := range c {
		fmt.Printf("%3d  %-22s $%8s x%d = $%s\n",
			it.ProductID, it.Name, it.Price.StringFixed(2), it.Quantity,
			it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2))
	}

	sum := sess.Summary()
	shipping := "$" + sum.Shipping.StringFixed(2)
	if sum.Shipping.IsZero() {
		shipping = "free"
	}
	fmt.Printf("subtotal $%s, shipping %s, total $%s (%d items)\n",
		sum.Subtotal.StringFixed(2), shipping, sum.Total.StringFixed(2), sess.ItemCount())
}
