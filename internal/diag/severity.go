package diag

// Severity задаёт вес диагностики. Сканер сегодня репортит только SevError
// (любая лексическая ошибка фатальна для прогона), но Bag и форматтеры
// различают все три уровня — задел под lint-слой поверх токенов.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for findings that do not fail the scan.
	SevWarning
	// SevError is fatal: the driver stops on the first one and drops tokens.
	SevError
)

// String returns the upper-case label used in pretty diagnostic headers.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
