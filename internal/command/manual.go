package command

// Manual is the command reference printed at the start of an interactive
// session and by `orgcount manual`.
const Manual = `Department headcount service.
Register departments, relate them to each other, then query the headcount
of the organization each one belongs to.

Commands

  NAME, HEADCOUNT        register a department
                         e.g. BACKEND, 10
                         Names are uppercase English letters only. The
                         headcount is an integer between 0 and 1000.

  SUPERIOR>SUBORDINATE   place SUBORDINATE under SUPERIOR
                         e.g. DEV>BACKEND
  *>NAME                 make NAME a root department
                         e.g. *>DEV
                         Departments can be related before any root exists.
                         A department that already belongs to a root cannot
                         become a root, and a root cannot be placed under
                         another department.

  NAME@HEADCOUNT         change the headcount of a department
                         e.g. BACKEND@15

  NAME                   show a department, its root and the total headcount
                         e.g. DEV

  -NAME                  delete a department (root departments are refused)

Queries

  After IT, 20 / DEV, 0 / BACKEND, 10 and *>IT / IT>DEV / DEV>BACKEND every
  department in *>IT>DEV>BACKEND reports:
    Current: [ DEV ], Root: [ IT ], Total: [ 30 ]

  Without a root the highest superior stands in for it. After A, 10 / B, 10 /
  C, 10 and A>B>C, every one of A, B and C reports A with 30 people.

Moving departments

  A department that is not a root can be moved under another department and
  totals follow it. Adding D, 20 then *>D and D>A gives *>D>A>B>C with 50
  people. Running D>B instead gives *>D>B>C with 40 people; A keeps existing
  on its own.

Type exit or quit to leave.`
