package component

// Wave — состояние текущей волны.
type Wave struct {
	Number         int // Порядковый номер волны, с 1
	DefIndex       int // Индекс определения волны
	EnemiesToSpawn int
	SpawnTimer     float64 // Время с последнего появления
	NextSpawnIn    float64 // Через сколько появится следующий враг
	Ended          bool
}
