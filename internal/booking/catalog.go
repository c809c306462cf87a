package booking

import "github.com/m04kA/LessonBookingService/internal/domain"

// PackageSelector одна текущая позиция из фиксированного каталога
type PackageSelector struct {
	catalog  domain.Catalog
	selected string
}

func NewPackageSelector(catalog domain.Catalog) *PackageSelector {
	return &PackageSelector{catalog: catalog}
}

// SelectPackage заменяет выбор; неизвестный ключ игнорируется
func (p *PackageSelector) SelectPackage(key string) (domain.Package, bool) {
	pkg, ok := p.catalog.Get(key)
	if !ok {
		return domain.Package{}, false
	}
	p.selected = key
	return pkg, true
}

// CurrentSelection позиция каталога для выбранного ключа
func (p *PackageSelector) CurrentSelection() (domain.Package, bool) {
	if p.selected == "" {
		return domain.Package{}, false
	}
	return p.catalog.Get(p.selected)
}

// SelectedKey ключ выбранного пакета
func (p *PackageSelector) SelectedKey() string {
	return p.selected
}

func (p *PackageSelector) Catalog() domain.Catalog {
	return p.catalog
}
