package geoutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWGS84ToGCJ02_InsideChinaShifts(t *testing.T) {
	// Пекин
	p := WGS84ToGCJ02(116.404, 39.915)

	assert.NotEqual(t, 116.404, p.Lng)
	assert.NotEqual(t, 39.915, p.Lat)

	// Смещение GCJ-02 — сотни метров, не километры.
	d := DistanceMeters(Point{Lng: 116.404, Lat: 39.915}, p)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 1500.0)
}

func TestWGS84ToGCJ02_OutsideChinaIdentity(t *testing.T) {
	cases := []Point{
		{Lng: 2.3522, Lat: 48.8566},    // Париж
		{Lng: -74.0060, Lat: 40.7128},  // Нью-Йорк
		{Lng: 151.2093, Lat: -33.8688}, // Сидней
		{Lng: 116.404, Lat: 0.5},       // южнее границы прямоугольника
	}

	for _, c := range cases {
		got := WGS84ToGCJ02(c.Lng, c.Lat)
		assert.Equal(t, c, got)
	}
}

func TestGCJ02RoundTrip_ApproximatelyInvertible(t *testing.T) {
	// Конвертация обратима лишь приближённо: обратное преобразование вычитает
	// смещение, посчитанное в уже смещённой точке. Допуск 1e-4° (~10 м) —
	// с запасом, фактическая ошибка в разы меньше.
	points := []Point{
		{Lng: 116.404, Lat: 39.915},  // Пекин
		{Lng: 113.2644, Lat: 23.1291}, // Гуанчжоу
		{Lng: 121.4737, Lat: 31.2304}, // Шанхай
		{Lng: 104.0665, Lat: 30.5723}, // Чэнду
	}

	for _, p := range points {
		gcj := WGS84ToGCJ02(p.Lng, p.Lat)
		back := GCJ02ToWGS84(gcj.Lng, gcj.Lat)

		assert.InDelta(t, p.Lng, back.Lng, 1e-4)
		assert.InDelta(t, p.Lat, back.Lat, 1e-4)
	}
}

func TestBD09RoundTrip(t *testing.T) {
	p := Point{Lng: 116.404, Lat: 39.915}

	bd := GCJ02ToBD09(p.Lng, p.Lat)
	back := BD09ToGCJ02(bd.Lng, bd.Lat)

	assert.InDelta(t, p.Lng, back.Lng, 1e-6)
	assert.InDelta(t, p.Lat, back.Lat, 1e-6)
}

func TestDistanceMeters(t *testing.T) {
	p := Point{Lng: 116.404, Lat: 39.915}

	assert.Equal(t, 0.0, DistanceMeters(p, p))

	// Один градус широты на сферическом радиусе 6378137 м — около 111 км.
	d := DistanceMeters(Point{Lng: 116.404, Lat: 39.0}, Point{Lng: 116.404, Lat: 40.0})
	assert.InDelta(t, 111319.0, d, 500.0)

	// Округление до 4 знаков.
	frac := d * 10000
	assert.InDelta(t, math.Round(frac), frac, 1e-6)
}

func TestApplyOffset(t *testing.T) {
	p := Point{Lng: 113.9365, Lat: 22.5478}

	// Пустой список — без сдвига.
	require.Equal(t, p, ApplyOffset(nil, p))

	// Далёкая координата — тоже без сдвига.
	far := Point{Lng: p.Lng + 1, Lat: p.Lat}
	require.Equal(t, p, ApplyOffset([]Point{far}, p))

	// Дубликат — сдвиг на фиксированный радиус в случайном направлении.
	shifted := ApplyOffset([]Point{p}, p)
	require.NotEqual(t, p, shifted)

	dLng := shifted.Lng - p.Lng
	dLat := shifted.Lat - p.Lat
	r := math.Sqrt(dLng*dLng + dLat*dLat)
	assert.InDelta(t, 0.00010, r, 1e-9)
}

func TestPointInPolygon_UnitSquare(t *testing.T) {
	square := []Point{
		{Lng: 0, Lat: 0},
		{Lng: 1, Lat: 0},
		{Lng: 1, Lat: 1},
		{Lng: 0, Lat: 1},
	}

	assert.True(t, PointInPolygon(Point{Lng: 0.5, Lat: 0.5}, square))
	assert.False(t, PointInPolygon(Point{Lng: 2, Lat: 2}, square))
	assert.False(t, PointInPolygon(Point{Lng: -0.1, Lat: 0.5}, square))

	// Точно на вершине: ray-casting не даёт гарантий на границе, фиксируем
	// лишь то, что вызов не падает и возвращает булево значение.
	_ = PointInPolygon(Point{Lng: 0, Lat: 0}, square)
}
