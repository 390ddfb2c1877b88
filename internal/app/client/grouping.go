package client

import "boxmate/internal/utils/normalize"

// GroupProductsBySpace группирует предметы по нормализованной метке
// пространства. Порядок предметов внутри группы совпадает с порядком
// во входном срезе.
func GroupProductsBySpace(products []Product) map[string][]Product {
	grouped := make(map[string][]Product)
	for _, p := range products {
		key := normalize.Label(p.Box)
		grouped[key] = append(grouped[key], p)
	}
	return grouped
}

// FilterSpacesWithProducts возвращает только пространства, в которых
// есть хотя бы один предмет. Порядок пространств сохраняется.
func FilterSpacesWithProducts(spaces []Space, grouped map[string][]Product) []Space {
	result := make([]Space, 0, len(spaces))
	for _, sp := range spaces {
		if len(grouped[normalize.Label(sp.ID)]) > 0 {
			result = append(result, sp)
		}
	}
	return result
}
