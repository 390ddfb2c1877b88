package client

// Space - локальная модель пространства хранения.
// ID - нормализованный идентификатор группировки, DBID - исходный
// идентификатор записи в удалённом хранилище.
type Space struct {
	ID    string `json:"id"`
	DBID  string `json:"dbId,omitempty"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// Product - локальная модель предмета.
type Product struct {
	ID            string   `json:"_id,omitempty"`
	Name          string   `json:"name"`
	Desc          string   `json:"desc"`
	Box           string   `json:"box"`
	ParentID      string   `json:"parentId,omitempty"`
	Image         string   `json:"image,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// Snapshot - согласованная пара коллекций после синхронизации.
type Snapshot struct {
	Spaces   []Space
	Products []Product
}

// CatalogEntry - элемент каталога пространств по умолчанию.
type CatalogEntry struct {
	ID    string
	Image string
	Alt   string
}

// DefaultCatalog - пространства, создаваемые при первом запуске,
// если их ещё нет в удалённом хранилище.
var DefaultCatalog = []CatalogEntry{
	{ID: "closet", Image: "/icons/closet.svg", Alt: "Closet"},
	{ID: "fridge", Image: "/icons/fridge.svg", Alt: "Fridge"},
	{ID: "garage", Image: "/icons/garage.svg", Alt: "Garage"},
	{ID: "attic", Image: "/icons/attic.svg", Alt: "Attic"},
	{ID: "basement", Image: "/icons/basement.svg", Alt: "Basement"},
	{ID: "moving-box", Image: "/icons/moving-box.svg", Alt: "Moving Box"},
}
