/*

Public Dependency type information.

This sub-package contains the types needed to implement an external data
dependency (a query against the course catalog) and the client contracts those
dependencies are fetched through. Concrete implementations live in the
internal/dependency package.

*/
package dep
