package parse

// Parser for remote API headers.
//
// The accepted input is a list of C++ function declarations using a closed
// set of types:
//
// program       := { function_decl }
// function_decl := type ident '(' [ arg { ',' arg } ] ')' ';'
// arg           := type ident [ '=' '{' '}' ]
// type          := primitive
//                | 'std::vector' '<' type '>'
//                | 'std::optional' '<' type '>'
//                | 'std::tuple' '<' type { ',' type } '>'
//
// Glossary:
//
// Default marker
// --------------
//
// The literal '= {}' after an argument name. It is the only default
// value form that is understood.
//
// e.g.
// double wait(double dt, std::optional<bool> simulationTime = {});
//                                                           ^^^^
