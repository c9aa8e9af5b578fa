package main

// demoWorld is a small, self-contained board used when no -world flag is
// given: a rocky perimeter, a red anthill upper-left, a black anthill
// lower-right, and a scattering of food, in the Parse-able board grammar
// (a digit is a food pile, '+' a red anthill, '-' a black anthill, '#'
// rock, '.' empty), the console analogue of ant_cli's sample0 fixture.
const demoWorld = `11
11
# # # # # # # # # # #
# . . . . . . . . . #
# . + . . . . . 5 . #
# . . . . . . . . . #
# . . . 3 . . . . . #
# . . . . . . . . . #
# . . . . . . 4 . . #
# . . . . . . . . . #
# . 2 . . . . . - . #
# . . . . . . . . . #
# # # # # # # # # # #
`

// demoProgram is a small forager: wander until standing on food, pick it
// up, then wander home and drop it. Used for both colonies when no
// per-color program file is given.
const demoProgram = `
sense here 1 2 food
pickup 6 2
flip 3 3 4
turn right 0
move 0 5
turn left 0
sense here 10 7 home
flip 3 8 9
turn right 6
move 6 8
drop 0
`
