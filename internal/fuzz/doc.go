// Package fuzztests houses Go fuzz harnesses for the grid input path
// (source -> grid scanner -> diagnostics). They guard against panics,
// disagreement between the sequential and concurrent scanners and
// tokens that do not match the text they were read from.
//
// Назначение: прогонять произвольные байты через FileSet и сканер сетки.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/grid, internal/driver,
// internal/testkit.
package fuzztests
