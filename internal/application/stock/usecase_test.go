package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-pisos/internal/application/stock"
	"github.com/tu-usuario/stock-pisos/internal/domain"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
	"github.com/tu-usuario/stock-pisos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore implementa los tres puertos de persistencia sobre mapas en memoria.
// Devuelve copias en las lecturas para imitar filas leídas de la BD.
type fakeStore struct {
	products map[string]*entity.Product
	floors   map[string]*entity.FloorStock
	logs     []*entity.StockLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		floors:   make(map[string]*entity.FloorStock),
	}
}

func floorKey(barcode string, floor entity.Floor) string {
	return barcode + "|" + string(floor)
}

func (s *fakeStore) GetByBarcode(barcode string) (*entity.Product, error) {
	p, ok := s.products[barcode]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) GetByBarcodeForUpdate(barcode string) (*entity.Product, error) {
	return s.GetByBarcode(barcode)
}

func (s *fakeStore) Create(product *entity.Product) error {
	if _, ok := s.products[product.Barcode]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	s.products[product.Barcode] = &cp
	return nil
}

func (s *fakeStore) ApplyIn(barcode string, floor entity.Floor) error {
	p, ok := s.products[barcode]
	if !ok {
		return domain.ErrNotFound
	}
	p.TotalIn++
	p.CurrentStock++
	switch floor {
	case entity.FloorGround:
		p.GroundFloorStock++
	case entity.FloorSecond:
		p.SecondFloorStock++
	case entity.FloorThird:
		p.ThirdFloorStock++
	}
	return nil
}

func (s *fakeStore) ApplyOut(barcode string, floor entity.Floor) error {
	p, ok := s.products[barcode]
	if !ok {
		return domain.ErrNotFound
	}
	p.TotalOut++
	p.CurrentStock--
	switch floor {
	case entity.FloorGround:
		p.GroundFloorStock--
	case entity.FloorSecond:
		p.SecondFloorStock--
	case entity.FloorThird:
		p.ThirdFloorStock--
	}
	return nil
}

func (s *fakeStore) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range s.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (s *fakeStore) Get(barcode string, floor entity.Floor) (*entity.FloorStock, error) {
	return s.GetForUpdate(barcode, floor)
}

func (s *fakeStore) GetForUpdate(barcode string, floor entity.Floor) (*entity.FloorStock, error) {
	fs, ok := s.floors[floorKey(barcode, floor)]
	if !ok {
		return &entity.FloorStock{Barcode: barcode, Floor: floor, Stock: 0}, nil
	}
	cp := *fs
	return &cp, nil
}

func (s *fakeStore) Upsert(fs *entity.FloorStock) error {
	cp := *fs
	s.floors[floorKey(fs.Barcode, fs.Floor)] = &cp
	return nil
}

func (s *fakeStore) Append(log *entity.StockLog) error {
	cp := *log
	s.logs = append(s.logs, &cp)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra el fakeStore y
// cuenta cuántas transacciones se iniciaron.
type fakeTxRunner struct {
	store *fakeStore
	runs  int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	floorRepo repository.FloorStockRepository,
	logRepo repository.StockLogRepository,
) error) error {
	r.runs++
	return fn(r.store, r.store, r.store)
}

// fakeNotifier acumula las publicaciones.
type fakeNotifier struct {
	notified []*entity.Product
}

func (n *fakeNotifier) Notify(product *entity.Product) {
	n.notified = append(n.notified, product)
}

func newUseCase() (*stock.MovementUseCase, *fakeStore, *fakeTxRunner, *fakeNotifier) {
	store := newFakeStore()
	runner := &fakeTxRunner{store: store}
	notifier := &fakeNotifier{}
	uc := stock.NewMovementUseCase(runner, notifier, logger.Nop())
	return uc, store, runner, notifier
}

// assertLedgerInvariants verifica la consistencia de las tres vistas:
// current_stock == total_in - total_out == suma de contadores por piso
// == suma de filas de floor_stock del código.
func assertLedgerInvariants(t *testing.T, store *fakeStore, barcode string) {
	t.Helper()
	p, ok := store.products[barcode]
	require.True(t, ok, "el producto debe existir")

	assert.Equal(t, p.TotalIn-p.TotalOut, p.CurrentStock, "current_stock == total_in - total_out")
	assert.Equal(t, p.CurrentStock,
		p.GroundFloorStock+p.SecondFloorStock+p.ThirdFloorStock,
		"current_stock == suma de contadores por piso")

	sum := 0
	for _, fs := range store.floors {
		if fs.Barcode == barcode {
			sum += fs.Stock
		}
	}
	assert.Equal(t, p.CurrentStock, sum, "current_stock == suma de filas floor_stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyStockIn
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyStockIn_ProductoNuevo(t *testing.T) {
	uc, store, _, notifier := newUseCase()

	p, err := uc.ApplyStockIn(context.Background(), stock.StockInInput{
		Barcode: "7701234567890", ProductName: "Café 500g", Floor: "Ground Floor",
	})
	require.NoError(t, err)

	assert.Equal(t, "7701234567890", p.Barcode)
	assert.Equal(t, "Café 500g", p.Name)
	assert.Equal(t, 1, p.CurrentStock)
	assert.Equal(t, 1, p.TotalIn)
	assert.Equal(t, 0, p.TotalOut)
	assert.Equal(t, 1, p.GroundFloorStock)

	// Exactamente una fila de producto y una de piso, todas en 1
	assert.Len(t, store.products, 1)
	assert.Len(t, store.floors, 1)
	fs := store.floors[floorKey("7701234567890", entity.FloorGround)]
	require.NotNil(t, fs)
	assert.Equal(t, 1, fs.Stock)
	assert.Equal(t, "Café 500g", fs.ProductName)

	// Una línea de auditoría con la foto del stock resultante
	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, entity.ActionIn, entry.Action)
	assert.Equal(t, 1, entry.Quantity)
	assert.Equal(t, entity.FloorGround, entry.Floor)
	assert.Equal(t, 1, entry.NewStock)
	assert.NotEmpty(t, entry.ID)

	// Publicación tras el commit
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, p, notifier.notified[0])

	assertLedgerInvariants(t, store, "7701234567890")
}

func TestApplyStockIn_ProductoExistente(t *testing.T) {
	uc, store, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "A1", ProductName: "Taladro", Floor: "2nd Floor"})
	require.NoError(t, err)

	// El nombre enviado en entradas posteriores se ignora: manda el registrado
	p, err := uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "A1", ProductName: "Otro nombre", Floor: "3rd Floor"})
	require.NoError(t, err)

	assert.Equal(t, "Taladro", p.Name)
	assert.Equal(t, 2, p.CurrentStock)
	assert.Equal(t, 2, p.TotalIn)
	assert.Equal(t, 1, p.SecondFloorStock)
	assert.Equal(t, 1, p.ThirdFloorStock)
	assert.Len(t, store.logs, 2)
	assert.Equal(t, 2, store.logs[1].NewStock)

	assertLedgerInvariants(t, store, "A1")
}

func TestApplyStockIn_NombrePorDefecto(t *testing.T) {
	uc, _, _, _ := newUseCase()

	p, err := uc.ApplyStockIn(context.Background(), stock.StockInInput{Barcode: "B2", Floor: "Ground Floor"})
	require.NoError(t, err)
	assert.Equal(t, stock.DefaultProductName, p.Name)
}

func TestApplyStockIn_PisoDesconocido(t *testing.T) {
	uc, store, runner, notifier := newUseCase()

	_, err := uc.ApplyStockIn(context.Background(), stock.StockInInput{Barcode: "A1", Floor: "Sótano"})
	require.ErrorIs(t, err, domain.ErrUnknownFloor)

	// Rechazado en la frontera: ni transacción ni escrituras ni publicación
	assert.Zero(t, runner.runs)
	assert.Empty(t, store.products)
	assert.Empty(t, store.logs)
	assert.Empty(t, notifier.notified)
}

func TestApplyStockIn_BarcodeVacio(t *testing.T) {
	uc, _, runner, _ := newUseCase()

	_, err := uc.ApplyStockIn(context.Background(), stock.StockInInput{Barcode: "   ", Floor: "Ground Floor"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyStockOut
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyStockOut_SinStockPrevio(t *testing.T) {
	uc, store, _, notifier := newUseCase()

	_, err := uc.ApplyStockOut(context.Background(), stock.StockOutInput{Barcode: "X9", Floor: "Ground Floor"})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rechazo de negocio: ninguna tabla cambia, nada se publica
	assert.Empty(t, store.products)
	assert.Empty(t, store.floors)
	assert.Empty(t, store.logs)
	assert.Empty(t, notifier.notified)
}

func TestApplyStockOut_PisoDesconocido(t *testing.T) {
	uc, _, runner, _ := newUseCase()

	_, err := uc.ApplyStockOut(context.Background(), stock.StockOutInput{Barcode: "A1", Floor: "Azotea"})
	require.ErrorIs(t, err, domain.ErrUnknownFloor)
	assert.Zero(t, runner.runs)
}

func TestApplyStockOut_PisoSinStockAunqueOtroTenga(t *testing.T) {
	uc, store, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "A1", Floor: "Ground Floor"})
	require.NoError(t, err)

	// Hay stock en Ground Floor, pero la salida pide 2nd Floor
	_, err = uc.ApplyStockOut(ctx, stock.StockOutInput{Barcode: "A1", Floor: "2nd Floor"})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assertLedgerInvariants(t, store, "A1")
	assert.Equal(t, 1, store.products["A1"].CurrentStock)
}

func TestApplyStockOut_NoEscribeEnElLog(t *testing.T) {
	uc, store, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "A1", Floor: "Ground Floor"})
	require.NoError(t, err)
	require.Len(t, store.logs, 1)

	_, err = uc.ApplyStockOut(ctx, stock.StockOutInput{Barcode: "A1", Floor: "Ground Floor"})
	require.NoError(t, err)

	// La salida no agrega líneas de auditoría
	assert.Len(t, store.logs, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// Entrada, salida y reintento de salida sobre el mismo código y piso.
func TestEscenarioEntradaSalidaRechazo(t *testing.T) {
	uc, store, _, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "A1", Floor: "Ground Floor"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentStock)
	assert.Equal(t, 1, p.TotalIn)
	assert.Equal(t, 1, p.GroundFloorStock)

	p, err = uc.ApplyStockOut(ctx, stock.StockOutInput{Barcode: "A1", Floor: "Ground Floor"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentStock)
	assert.Equal(t, 1, p.TotalOut)
	assert.Equal(t, 0, p.GroundFloorStock)

	before := *store.products["A1"]
	_, err = uc.ApplyStockOut(ctx, stock.StockOutInput{Barcode: "A1", Floor: "Ground Floor"})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, before, *store.products["A1"], "el rechazo no debe mutar el producto")

	assertLedgerInvariants(t, store, "A1")
}

// Los invariantes del libro se mantienen en cada paso de una secuencia mixta.
func TestSecuenciaMixtaMantieneInvariantes(t *testing.T) {
	uc, store, _, _ := newUseCase()
	ctx := context.Background()

	steps := []struct {
		action string
		floor  string
		wantOK bool
	}{
		{"in", "Ground Floor", true},
		{"in", "Ground Floor", true},
		{"in", "2nd Floor", true},
		{"out", "Ground Floor", true},
		{"in", "3rd Floor", true},
		{"out", "3rd Floor", true},
		{"out", "3rd Floor", false}, // 3rd Floor quedó en 0
		{"out", "2nd Floor", true},
		{"out", "Ground Floor", true},
		{"out", "Ground Floor", false}, // todo en 0
	}

	for i, step := range steps {
		var err error
		if step.action == "in" {
			_, err = uc.ApplyStockIn(ctx, stock.StockInInput{Barcode: "MIX", Floor: step.floor})
		} else {
			_, err = uc.ApplyStockOut(ctx, stock.StockOutInput{Barcode: "MIX", Floor: step.floor})
		}
		if step.wantOK {
			require.NoError(t, err, "paso %d", i)
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock, "paso %d", i)
		}
		assertLedgerInvariants(t, store, "MIX")
	}

	p := store.products["MIX"]
	assert.Equal(t, 4, p.TotalIn)
	assert.Equal(t, 4, p.TotalOut)
	assert.Equal(t, 0, p.CurrentStock)
	assert.Len(t, store.logs, 4, "solo las entradas escriben en el log")
}
