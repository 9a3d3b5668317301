package planilla

// Reconciliar alinea los datos existentes de una hoja con la lista de
// columnas requeridas: conserva los valores bajo los nombres compartidos,
// completa con celda vacía las columnas nuevas, descarta las columnas que
// ya no pertenecen al esquema y reordena según la lista requerida.
//
// La evolución del esquema es aditiva y no destructiva para los datos bajo
// nombres compartidos; los datos bajo columnas eliminadas se pierden a
// propósito (el log es append-mostly y no arrastra columnas muertas).
func Reconciliar(header []string, filas [][]string, requeridas []string) [][]string {
	indice := make(map[string]int, len(header))
	for i, nombre := range header {
		indice[nombre] = i
	}

	resultado := make([][]string, 0, len(filas))
	for _, fila := range filas {
		nueva := make([]string, len(requeridas))
		for j, col := range requeridas {
			if i, ok := indice[col]; ok && i < len(fila) {
				nueva[j] = fila[i]
			}
		}
		resultado = append(resultado, nueva)
	}
	return resultado
}

// MismoHeader compara el header leído contra las columnas requeridas,
// nombre por nombre y en orden.
func MismoHeader(header, requeridas []string) bool {
	if len(header) != len(requeridas) {
		return false
	}
	for i := range header {
		if header[i] != requeridas[i] {
			return false
		}
	}
	return true
}
