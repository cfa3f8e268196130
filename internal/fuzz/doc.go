// Package fuzztests holds Go fuzz harnesses for the glassful front end and
// the whole translation pipeline. They guard against panics and hangs on
// arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер, парсер и
// изолированный перевод.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast, internal/driver.

package fuzztests
