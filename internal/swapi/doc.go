// Package swapi retrieves raw film, people, and species records from the Star
// Wars API or from a local snapshot of it.
//
// Both retrieval paths implement Source. The HTTP Client follows the API's
// paginated `next` links until exhausted and fails fast on any non-200
// response; it does not retry. FileSource reads the same payload shapes from
// films.json, people.json, and species.json so reports can run offline.
package swapi
