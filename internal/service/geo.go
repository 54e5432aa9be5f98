package service

import "math"

// earthRadiusMiles es el radio terrestre usado por la formula de haversine.
const earthRadiusMiles = 3959.0

// DistanceUnknown es el centinela devuelto cuando falta alguna coordenada.
// Los llamadores deben tratarlo como "excluir del puntaje de ubicacion".
var DistanceUnknown = math.Inf(1)

// Distance calcula la distancia de circulo maximo en millas entre dos
// puntos usando haversine. Si falta cualquier componente devuelve
// DistanceUnknown en vez de fallar.
func Distance(lat1, lon1, lat2, lon2 *float64) float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return DistanceUnknown
	}

	lat1Rad := radians(*lat1)
	lat2Rad := radians(*lat2)
	deltaLat := radians(*lat2 - *lat1)
	deltaLon := radians(*lon2 - *lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
